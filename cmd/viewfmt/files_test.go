package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/viewfmt/internal/errors"
)

func TestCollectViewFiles(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"b.view", "a.view", "notes.txt", "sub/c.view", "sub/deep/d.view", ".git/e.view"} {
		writeFile(t, filepath.Join(dir, p), "")
	}
	t.Chdir(dir)

	type tc struct {
		paths []string
		want  []string
	}

	tests := map[string]tc{
		"recursive pattern": {
			paths: []string{"./..."},
			want:  []string{"a.view", "b.view", "sub/c.view", "sub/deep/d.view"},
		},
		"directory is walked recursively": {
			paths: []string{"sub"},
			want:  []string{"sub/c.view", "sub/deep/d.view"},
		},
		"explicit file of any extension": {
			paths: []string{"notes.txt"},
			want:  []string{"notes.txt"},
		},
		"duplicates are dropped": {
			paths: []string{"sub/c.view", "sub/...", "./sub/c.view"},
			want:  []string{"sub/c.view", "sub/deep/d.view"},
		},
		"hidden directories are skipped": {
			paths: []string{"."},
			want:  []string{"a.view", "b.view", "sub/c.view", "sub/deep/d.view"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := collectViewFiles(tt.paths)
			require.NoError(t, err)

			want := make([]string, len(tt.want))
			for i, p := range tt.want {
				want[i] = filepath.FromSlash(p)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestCollectViewFilesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "empty", "x.txt"), "")
	t.Chdir(dir)

	_, err := collectViewFiles([]string{"empty"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoFiles))
	assert.Equal(t, []string{"files must end in .view"}, errors.GetAllHints(err))

	_, err = collectViewFiles([]string{"missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat missing")
}

func TestWatchRoots(t *testing.T) {
	assert.Equal(t, []string{".", "sub"}, watchRoots([]string{"./...", ".", "sub/...", "sub/"}))
}
