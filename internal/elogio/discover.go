package elogio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Portage saves elogs either flat, category:package:timestamp.log, or in
// per-category subdirectories, category/package:timestamp.log. Both forms
// may carry a .gz or .bz2 suffix.
var discoverPatterns = []string{
	"*:*:*.log*",
	"*/*:*.log*",
}

// Discover lists elog files under dir, sorted by path. A missing
// directory is not an error; it yields an empty listing.
func Discover(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	fsys := os.DirFS(dir)
	var files []string
	for _, pattern := range discoverPatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, match := range matches {
			files = append(files, filepath.Join(dir, match))
		}
	}
	sort.Strings(files)
	return files, nil
}
