package replacet

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/maps"
)

// NamespacesFromDir returns the namespace files under dir keyed by namespace.
// Files in sub directories are named after their relative path, dir/dir.json is "dir/dir".
func NamespacesFromDir(fs afero.Fs, dir string) (map[string]string, error) {
	files := make(map[string]string)

	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(strings.TrimSuffix(rel, ".json"))] = path

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: reading namespaces: %w", ErrResourceLoad, err)
	}

	return files, nil
}

// Keys returns the dotted paths of every string in a loaded namespace, sorted.
// Strings inside arrays are not listed.
func (c *Cache) Keys(namespace string) ([]string, error) {
	doc, ok := c.documents[namespace]
	if !ok {
		return nil, fmt.Errorf("%w: namespace %q is not loaded", ErrKeyNotFound, namespace)
	}

	var keys []string
	collectKeys(doc, "", &keys)
	slices.Sort(keys)

	return keys, nil
}

func collectKeys(value any, prefix string, keys *[]string) {
	switch v := value.(type) {
	case string:
		if prefix != "" {
			*keys = append(*keys, prefix)
		}
	case map[string]any:
		for _, key := range maps.Keys(v) {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			collectKeys(v[key], path, keys)
		}
	}
}
