// Package tree decides which files of a source theme get migrated and where
// they go. Nothing here reads or writes SVG.
package tree

import (
	"io/fs"
	"iter"
	"path"
	"path/filepath"
	"strings"

	"github.com/kpango/glg"
)

// DefaultCategory is used when a file's path says nothing better.
const DefaultCategory = "apps"

// Candidates lazily yields the slash-separated paths, relative to root, of
// regular files accepted by keep, in lexical order. Symlinked files are
// skipped and symlinked directories are not descended into.
func Candidates(root string, keep func(rel string) bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if p == root {
				return nil
			}

			if d.Type()&fs.ModeSymlink != 0 {
				glg.Debugf("Skipping symlink: %s", p)
				return nil
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)
			if keep != nil && !keep(rel) {
				return nil
			}

			if !yield(rel, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// ExtensionFilter accepts paths ending in one of exts, case-insensitively.
// Extensions may be given with or without the leading dot.
func ExtensionFilter(exts []string) func(rel string) bool {
	suffixes := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			suffixes = append(suffixes, "."+e)
		}
	}

	return func(rel string) bool {
		lower := strings.ToLower(rel)
		for _, s := range suffixes {
			if strings.HasSuffix(lower, s) {
				return true
			}
		}

		return false
	}
}

// Category resolves the icon category of rel: override, else the first
// directory of rel, else DefaultCategory.
func Category(rel, override string) string {
	if override != "" {
		return override
	}

	if first, _, found := strings.Cut(path.Clean(filepath.ToSlash(rel)), "/"); found && first != "." && first != ".." {
		return first
	}

	return DefaultCategory
}

// IconName is the file name of rel without its extension.
func IconName(rel string) string {
	base := path.Base(filepath.ToSlash(rel))
	return strings.TrimSuffix(base, path.Ext(base))
}

// Mirror places rel under outputRoot.
func Mirror(outputRoot, rel string) string {
	return filepath.Join(outputRoot, filepath.FromSlash(rel))
}
