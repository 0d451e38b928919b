package sitegen

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func newTestApp(t *testing.T, fsys fstest.MapFS) *App {
	t.Helper()
	cfg := testConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	return New(cfg, stubViews(), WithStore(NewStoreFS(fsys)), WithLogger(quietLogger()))
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandlers(t *testing.T) {
	app := newTestApp(t, fixtureFS(t))

	tests := []struct {
		name        string
		target      string
		status      int
		body        string
		contentType string
	}{
		{"home", "/", http.StatusOK, "home:Eng Blog", "text/html"},
		{"index", "/articles/", http.StatusOK, "index:All Articles", "text/html"},
		{"article", "/articles/first-post/", http.StatusOK, "article:first-post:https://blog.example.com/articles/first-post/", "text/html"},
		{"dangling article renders", "/articles/orphan/", http.StatusOK, "article:orphan:", "text/html"},
		{"unknown article", "/articles/nope/", http.StatusNotFound, "notfound:Article Not Found", "text/html"},
		{"about", "/about/", http.StatusOK, "about:About Us", "text/html"},
		{"unknown page", "/nowhere/", http.StatusNotFound, "notfound:Page Not Found", "text/html"},
		{"content files are private", "/content/articles.json", http.StatusNotFound, "notfound:", "text/html"},
		{"sitemap", "/sitemap.xml", http.StatusOK, "<loc>https://blog.example.com/articles/orphan/</loc>", "application/xml"},
		{"feed", "/feed.xml", http.StatusOK, "<title>First Post</title>", "application/rss+xml"},
		{"robots", "/robots.txt", http.StatusOK, "Sitemap: https://blog.example.com/sitemap.xml", "text/plain"},
		{"stylesheet", "/style.css", http.StatusOK, "", "text/css"},
		{"article asset", "/data/first-post/cover.png", http.StatusOK, "", "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, app, tt.target)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tt.contentType),
				"Content-Type = %q", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandlerAddsTrailingSlash(t *testing.T) {
	app := newTestApp(t, fixtureFS(t))

	rec := get(t, app, "/articles/first-post")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/articles/first-post/", rec.Header().Get("Location"))
}

func TestHandlerCacheControl(t *testing.T) {
	app := newTestApp(t, fixtureFS(t))

	assert.Equal(t, "no-cache", get(t, app, "/").Header().Get("Cache-Control"))
	assert.Equal(t, "public, max-age=86400", get(t, app, "/sitemap.xml").Header().Get("Cache-Control"))
	assert.Equal(t, "public, max-age=3600", get(t, app, "/style.css").Header().Get("Cache-Control"))
}

func TestHandlerReflectsEdits(t *testing.T) {
	fsys := fixtureFS(t)
	app := newTestApp(t, fsys)
	require.Equal(t, http.StatusOK, get(t, app, "/articles/first-post/").Code)

	fsys["content/articles.json"] = &fstest.MapFile{Data: []byte(`[]`)}
	assert.Equal(t, http.StatusNotFound, get(t, app, "/articles/first-post/").Code)
}

func TestHandlerContentErrorIsServerError(t *testing.T) {
	fsys := fixtureFS(t)
	delete(fsys, "content/footer.json")
	app := newTestApp(t, fsys)

	rec := get(t, app, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error:Server Error")
}

func TestExport(t *testing.T) {
	app := newTestApp(t, fixtureFS(t))

	res, err := app.Export(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Articles)
	assert.Equal(t, 5+8+2, res.Files)

	out := app.Config.OutputDir
	for _, name := range []string{
		"index.html",
		"articles/index.html",
		"articles/first-post/index.html",
		"articles/orphan/index.html",
		"about/index.html",
		"404.html",
		"sitemap.xml",
		"feed.xml",
		"robots.txt",
		"style.css",
		"data/first-post/cover.png",
		"avatars/ada.webp",
		"logo.png",
	} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(name)))
	}
	assert.NoDirExists(t, filepath.Join(out, "content"))

	page, err := os.ReadFile(filepath.Join(out, "articles", "first-post", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "article:first-post:https://blog.example.com/articles/first-post/", string(page))

	sitemap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(sitemap), "<url>"))
}

func TestExportFailsOnMissingBody(t *testing.T) {
	fsys := fixtureFS(t)
	delete(fsys, "data/orphan/index.md")
	app := newTestApp(t, fsys)

	_, err := app.Export(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentMissing)
	assert.Contains(t, err.Error(), "article orphan")
}

func TestAppCheck(t *testing.T) {
	app := newTestApp(t, fixtureFS(t))

	findings, err := app.Check(t.Context())
	require.NoError(t, err)
	assert.Len(t, findings, 2)
	assert.False(t, HasErrors(findings))
}
