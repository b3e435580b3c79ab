package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/grindlemire/viewfmt/internal/errors"
	"github.com/grindlemire/viewfmt/internal/log"
	"github.com/grindlemire/viewfmt/internal/watch"
)

// collectViewFiles expands paths into .view files. Directories and the
// "dir/..." pattern are walked recursively, skipping hidden directories.
// Files named explicitly are kept whatever their extension. The result is
// deduplicated and keeps first-seen order.
func collectViewFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	appendFile := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, path := range paths {
		root := walkRoot(path)

		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", root)
		}

		if !info.IsDir() {
			if filepath.Ext(root) != watch.Extension {
				log.Warnf("%s does not end in %s; formatting it anyway", root, watch.Extension)
			}
			appendFile(root)
			continue
		}

		var found []string
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(p) == watch.Extension {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walking %s", root)
		}

		slices.Sort(found)
		for _, p := range found {
			appendFile(p)
		}
	}

	if len(files) == 0 {
		err := errors.WithDetailf(errors.ErrNoFiles, "searched: %s", strings.Join(paths, " "))
		return nil, errors.WithHintf(err, "files must end in %s", watch.Extension)
	}
	return files, nil
}

// walkRoot strips a trailing "/..." pattern: "./..." becomes ".".
func walkRoot(path string) string {
	if root, ok := strings.CutSuffix(path, "/..."); ok {
		if root == "" {
			return "."
		}
		return root
	}
	if path == "..." {
		return "."
	}
	return path
}

// watchRoots returns the paths the watcher should observe for paths.
func watchRoots(paths []string) []string {
	roots := make([]string, 0, len(paths))
	for _, p := range paths {
		root := filepath.Clean(walkRoot(p))
		if !slices.Contains(roots, root) {
			roots = append(roots, root)
		}
	}
	return roots
}
