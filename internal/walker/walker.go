// Package walker discovers static asset files (images, downloads, extra CSS)
// inside a course content directory. Markdown lesson bodies and the catalog
// file are handled by the site generator and are never treated as assets.
package walker

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// CollectAssets walks contentDir and returns the slash-separated relative
// paths of all asset files that pass the include/exclude globs. The result
// is in filepath.WalkDir order (lexical), which keeps builds deterministic.
func CollectAssets(contentDir string, include, exclude []string) ([]string, error) {
	var assets []string

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != contentDir && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if strings.HasSuffix(rel, ".md") || rel == "catalog.yml" {
			return nil
		}
		if !Match(rel, include, exclude) {
			return nil
		}

		assets = append(assets, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assets, nil
}
