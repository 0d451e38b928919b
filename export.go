package sitegen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ExportResult summarizes one static export.
type ExportResult struct {
	Dir      string
	Articles int
	Files    int
	Elapsed  time.Duration
}

// Export writes the whole site into Config.OutputDir. Collections are loaded
// once; article pages are rendered concurrently from that snapshot. Any
// failure aborts the export.
func (a *App) Export(ctx context.Context) (ExportResult, error) {
	start := time.Now()
	out := a.Config.OutputDir
	res := ExportResult{Dir: out}

	skip, inside := relWithin(a.Config.ContentDir, out)
	if inside && skip == "." {
		return res, fmt.Errorf("output dir %s is the content dir", out)
	}

	snap, err := LoadSnapshot(ctx, a.Store)
	if err != nil {
		return res, err
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}
	// Pages of deleted articles must not outlive them.
	if err := os.RemoveAll(filepath.Join(out, "articles")); err != nil {
		return res, fmt.Errorf("clear articles: %w", err)
	}

	copied, err := copyAssets(a.Store.FS(), out, skip)
	if err != nil {
		return res, fmt.Errorf("copy assets: %w", err)
	}

	cfg := a.Config
	pages := []struct {
		name   string
		render func() error
	}{
		{"index.html", func() error {
			return RenderFile(ctx, filepath.Join(out, "index.html"), a.Views.Home(NewHomePage(snap, cfg)))
		}},
		{"articles/index.html", func() error {
			return RenderFile(ctx, filepath.Join(out, "articles", "index.html"), a.Views.ArticleIndex(NewIndexPage(snap, cfg)))
		}},
		{"about/index.html", func() error {
			return RenderFile(ctx, filepath.Join(out, "about", "index.html"), a.Views.About(NewAboutPage(snap, cfg)))
		}},
		{"404.html", func() error {
			return RenderFile(ctx, filepath.Join(out, "404.html"), a.Views.NotFound(NewNotFoundPage(snap, cfg)))
		}},
		{"sitemap.xml", func() error {
			var buf bytes.Buffer
			if err := WriteSitemapXML(&buf, BuildSitemap(snap.Articles, cfg.URL)); err != nil {
				return err
			}
			return writeFile(filepath.Join(out, "sitemap.xml"), buf.Bytes())
		}},
		{"feed.xml", func() error {
			var buf bytes.Buffer
			if err := WriteFeedXML(&buf, snap, cfg); err != nil {
				return err
			}
			return writeFile(filepath.Join(out, "feed.xml"), buf.Bytes())
		}},
		{"robots.txt", func() error {
			return writeFile(filepath.Join(out, "robots.txt"), []byte(RobotsTxt(cfg)))
		}},
		{"style.css", func() error {
			b, err := EmbeddedAssets.ReadFile(stylesheetPath)
			if err != nil {
				return err
			}
			return writeFile(filepath.Join(out, "style.css"), b)
		}},
	}
	for _, p := range pages {
		if err := p.render(); err != nil {
			return res, fmt.Errorf("export %s: %w", p.name, err)
		}
		a.logger.Debugf("wrote %s", p.name)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for _, id := range snap.ArticleIDs() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := NewArticlePage(snap, cfg, a.Store, id)
			if err != nil {
				return fmt.Errorf("article %s: %w", id, err)
			}
			name := filepath.Join(out, "articles", id, "index.html")
			if err := RenderFile(gctx, name, a.Views.Article(page)); err != nil {
				return fmt.Errorf("article %s: %w", id, err)
			}
			a.logger.Debugf("wrote articles/%s/index.html", id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	res.Articles = len(snap.Articles)
	res.Files = copied + len(pages) + len(snap.Articles)
	res.Elapsed = time.Since(start)
	a.logger.Infof("exported %d articles (%d files) to %s in %s", res.Articles, res.Files, out, res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// copyAssets mirrors every file of the content root except the collection
// files under content/ into dst. skip names a directory of fsys left out of
// the copy, normally the output dir itself; empty skips nothing.
func copyAssets(fsys fs.FS, dst, skip string) (int, error) {
	n := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p == contentSubdir || (skip != "" && p == skip) {
				return fs.SkipDir
			}
			return nil
		}
		src, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()
		target := filepath.Join(dst, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		f, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(f, src); err != nil {
			f.Close()
			return err
		}
		n++
		return f.Close()
	})
	return n, err
}

func writeFile(name string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, b, 0o644)
}

// relWithin returns p relative to root, slash separated, when p is root or
// lies below it.
func relWithin(root, p string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absP, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absP)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
