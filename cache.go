package replacet

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/afero"
)

// Cache loads and caches one JSON document per namespace.
//
// A namespace file is parsed again only when its modification time changed since it was
// last loaded. A Cache is owned by a single Transformer and is not safe for concurrent use.
type Cache struct {
	fs     afero.Fs
	dir    string
	logger *slog.Logger

	// documents holds the parsed JSON per namespace.
	documents map[string]any
	// modTimes holds the modification time of every loaded file, keyed by path.
	modTimes map[string]time.Time
	loads    int
}

// NewCache returns a cache reading namespace files from dir.
func NewCache(fs afero.Fs, dir string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		fs:        fs,
		dir:       dir,
		logger:    logger,
		documents: make(map[string]any),
		modTimes:  make(map[string]time.Time),
	}
}

// Path returns the file a namespace is read from.
func (c *Cache) Path(namespace string) string {
	return filepath.Join(c.dir, namespace+".json")
}

// AddFile loads the namespace file unless it is already loaded and unchanged on disk.
func (c *Cache) AddFile(namespace string) error {
	path := c.Path(namespace)

	stat, err := c.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceLoad, err)
	}

	modified := stat.ModTime()
	if mtime, ok := c.modTimes[path]; ok && mtime.Equal(modified) {
		return nil
	}

	content, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceLoad, err)
	}

	doc, err := oj.Parse(content)
	if err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrResourceLoad, path, err)
	}

	c.documents[namespace] = doc
	c.modTimes[path] = modified
	c.loads++

	c.logger.Debug("loaded namespace", "namespace", namespace, "path", path, "modified", modified)

	return nil
}

// Get returns the string stored at the dotted path of a loaded namespace.
//
// The path is evaluated as the JSONPath expression $.<path>, one child per dotted segment.
// When the expression matches more than one value the first match is used.
func (c *Cache) Get(namespace, path string) (string, error) {
	doc, ok := c.documents[namespace]
	if !ok {
		return "", fmt.Errorf("%w: namespace %q is not loaded", ErrKeyNotFound, namespace)
	}

	expr, err := pathExpr(path)
	if err != nil {
		return "", fmt.Errorf("%w: invalid path %q: %w", ErrKeyNotFound, path, err)
	}

	matches := expr.Get(doc)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s:%s", ErrKeyNotFound, namespace, path)
	}

	value, ok := matches[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s:%s is not a string", ErrKeyNotFound, namespace, path)
	}

	return value, nil
}

var segmentRe = regexp.MustCompile(`^(.*?)((?:\[\d+\])*)$`)

// pathExpr builds the JSONPath of a dotted key one child per segment, so key names may
// contain any character but the dot. A segment may end in array indexes, "list[1]", and
// "*" matches every child.
func pathExpr(path string) (jp.Expr, error) {
	x := jp.R()

	for _, seg := range strings.Split(path, ".") {
		m := segmentRe.FindStringSubmatch(seg)
		name, indexes := m[1], m[2]

		switch name {
		case "":
			if indexes == "" {
				return nil, fmt.Errorf("empty segment in %q", path)
			}
		case "*":
			x = x.W()
		default:
			x = x.C(name)
		}

		for _, index := range strings.Split(strings.Trim(indexes, "[]"), "][") {
			if index == "" {
				continue
			}

			n, err := strconv.Atoi(index)
			if err != nil {
				return nil, err
			}
			x = x.N(n)
		}
	}

	return x, nil
}

// Loads returns how many times a namespace file has been parsed.
func (c *Cache) Loads() int {
	return c.loads
}
