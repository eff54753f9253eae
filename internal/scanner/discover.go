// Package scanner discovers asset directories in a project tree.
package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kilnworks/assetpath/internal/pathnorm"
)

// AssetDir is a discovered directory anchored at the configured root.
type AssetDir struct {
	// Path is the absolute filesystem path to the directory.
	Path string `json:"path"`

	// Rel is the path relative to the scanned project root, in the
	// platform's native separators.
	Rel string `json:"rel"`

	// Canonical is the normalized form of Rel.
	Canonical string `json:"canonical"`

	// Files is the number of regular files directly in the directory.
	Files int `json:"files"`

	// Changed reports whether normalization rewrote Rel.
	Changed bool `json:"changed"`
}

// Discover walks the project tree rooted at dir and returns every
// directory anchored at the options' root marker, with its canonical
// form. Directory names in ignore are skipped entirely.
func Discover(dir string, opts pathnorm.Options, ignore []string) ([]AssetDir, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	fileCounts := make(map[string]int)
	var dirs []string

	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != abs && (skip[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			if path != abs {
				dirs = append(dirs, path)
			}
			return nil
		}
		if d.Type().IsRegular() {
			fileCounts[filepath.Dir(path)]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var results []AssetDir
	for _, path := range dirs {
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			continue
		}
		if !pathnorm.Anchored(rel, opts.Root) {
			continue
		}
		canonical := pathnorm.Normalize(rel, opts)
		results = append(results, AssetDir{
			Path:      path,
			Rel:       rel,
			Canonical: canonical,
			Files:     fileCounts[path],
			Changed:   canonical != rel,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Canonical < results[j].Canonical
	})

	return results, nil
}
