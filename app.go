// Package sitegen is the content pipeline of a static technical blog. It
// loads flat-file content, joins articles with their authors and categories,
// and derives canonical URLs, social metadata, JSON-LD, a sitemap and a feed.
//
// The same pipeline drives a static exporter (App.Export), a preview server
// (App.Start) and a content checker (App.Check). Page markup is supplied by
// the caller through ViewFuncs.
package sitegen

import (
	"net/http"
	"sync"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ViewFuncs holds the templ components used to render pages. The views
// package provides a default set.
type ViewFuncs struct {
	Home         func(p HomePage) templ.Component
	ArticleIndex func(p IndexPage) templ.Component
	Article      func(p ArticlePage) templ.Component
	About        func(p AboutPage) templ.Component
	NotFound     func(p Page) templ.Component
	ServerError  func(p Page) templ.Component
}

// App wires together the content store, snapshot cache, views and the
// preview server.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *SnapshotCache
	Views  ViewFuncs

	logger    echo.Logger
	setupOnce sync.Once
}

// New creates an App for cfg. Zero config fields take their defaults.
func New(cfg Config, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		l := log.New("sitegen")
		l.SetHeader("${time_rfc3339} ${level} ${prefix}")
		l.SetLevel(log.INFO)
		a.logger = l
	}
	a.Echo.Logger = a.logger
	if a.Store == nil {
		a.Store = NewStore(cfg.ContentDir)
	}
	a.Cache = NewSnapshotCache(a.Store, cfg.CacheTTL)
	return a
}

// Logger returns the application logger.
func (a *App) Logger() echo.Logger {
	return a.logger
}

// Handler returns the preview server's HTTP handler.
func (a *App) Handler() http.Handler {
	a.setupOnce.Do(func() {
		a.setupMiddleware()
		a.setupRoutes()
	})
	return a.Echo
}

// Start runs the preview server on Config.Addr until it is shut down.
func (a *App) Start() error {
	a.Handler()
	a.logger.Infof("previewing %s on %s", a.Config.ContentDir, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	g := a.Echo.Group(a.Config.BasePath)

	g.GET("/style.css", a.handleStylesheet)
	g.GET("/robots.txt", a.handleRobots)
	g.GET("/sitemap.xml", a.handleSitemap)
	g.GET("/feed.xml", a.handleFeed)

	g.GET("/", a.handleHome)
	g.GET("/articles/", a.handleArticleIndex)
	g.GET("/articles/:id/", a.handleArticle)
	g.GET("/about/", a.handleAbout)

	// Article data, avatars and the logo come straight from the content root.
	g.GET("/*", a.handleAsset)
}
