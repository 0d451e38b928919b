package sitegen

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 300 * time.Millisecond

// Watch exports once, then re-exports whenever a file below the content
// directory changes, until ctx is cancelled. A failed export is logged and
// the next change triggers another attempt.
func (a *App) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer watcher.Close()

	root := a.Config.ContentDir
	// The exporter's own writes must not trigger rebuilds.
	var skip string
	if rel, ok := relWithin(root, a.Config.OutputDir); ok {
		skip = filepath.Join(root, filepath.FromSlash(rel))
	}
	if err := addDirsRecursive(watcher, root, skip); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	a.exportLogged(ctx)
	a.logger.Infof("watching %s for changes", root)

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isWithin(ev.Name, skip) {
				continue
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addDirsRecursive(watcher, ev.Name, skip); err != nil {
						a.logger.Warnf("watch %s: %v", ev.Name, err)
					}
				}
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			a.logger.Debugf("change: %s", ev)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warnf("watcher: %v", err)
		case <-rebuild:
			a.exportLogged(ctx)
		}
	}
}

func (a *App) exportLogged(ctx context.Context) {
	if _, err := a.Export(ctx); err != nil {
		a.logger.Errorf("export failed: %v", err)
	}
}

// addDirsRecursive watches root and every directory below it except skip
// and its subtree.
func addDirsRecursive(w *fsnotify.Watcher, root, skip string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if isWithin(p, skip) {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}

// isWithin reports whether p is dir or lies below it. An empty dir contains
// nothing.
func isWithin(p, dir string) bool {
	if dir == "" {
		return false
	}
	p, dir = filepath.Clean(p), filepath.Clean(dir)
	return p == dir || strings.HasPrefix(p, dir+string(filepath.Separator))
}
