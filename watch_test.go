package sitegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDirsRecursiveSkipsOutputDir(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"content", "data/first-post", "out/articles/first-post"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755))
	}

	w, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, addDirsRecursive(w, root, filepath.Join(root, "out")))

	watched := w.WatchList()
	assert.Contains(t, watched, root)
	assert.Contains(t, watched, filepath.Join(root, "data", "first-post"))
	for _, p := range watched {
		assert.False(t, isWithin(p, filepath.Join(root, "out")), "output dir watched: %s", p)
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		p, dir string
		want   bool
	}{
		{"site/out", "site/out", true},
		{"site/out/articles/a1", "site/out", true},
		{"site/out/", "site/out", true},
		{"site/outline", "site/out", false},
		{"site/data", "site/out", false},
		{"site/out", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isWithin(tt.p, tt.dir), "isWithin(%q, %q)", tt.p, tt.dir)
	}
}
