package sitegen

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	snap, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(NewHomePage(snap, a.Config)))
}

func (a *App) handleArticleIndex(c echo.Context) error {
	snap, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.ArticleIndex(NewIndexPage(snap, a.Config)))
}

func (a *App) handleArticle(c echo.Context) error {
	snap, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	page, err := NewArticlePage(snap, a.Config, a.Store, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(NewNotFoundPage(snap, a.Config)))
		}
		return err
	}
	return Render(c, a.Views.Article(page))
}

func (a *App) handleAbout(c echo.Context) error {
	snap, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.About(NewAboutPage(snap, a.Config)))
}

func (a *App) handleSitemap(c echo.Context) error {
	articles, err := a.Store.Articles()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemapXML(c.Response(), BuildSitemap(articles, a.Config.URL))
}

func (a *App) handleFeed(c echo.Context) error {
	snap, err := a.Cache.Get(c.Request().Context())
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteFeedXML(c.Response(), snap, a.Config)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, RobotsTxt(a.Config))
}

func (a *App) handleStylesheet(c echo.Context) error {
	b, err := EmbeddedAssets.ReadFile(stylesheetPath)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", b)
}

// handleAsset serves files from the content root. Collection files under
// content/ are not public.
func (a *App) handleAsset(c echo.Context) error {
	name := strings.TrimPrefix(path.Clean("/"+c.Param("*")), "/")
	if name == "" || name == contentSubdir || strings.HasPrefix(name, contentSubdir+"/") || !fs.ValidPath(name) {
		return echo.ErrNotFound
	}
	fsys := a.Store.FS()
	info, err := fs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		return echo.ErrNotFound
	}
	http.ServeFileFS(c.Response(), c.Request(), fsys, name)
	return nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(NewErrorPage(a.Config, "Page Not Found")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(NewErrorPage(a.Config, "Server Error")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
