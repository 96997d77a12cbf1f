package replacet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/wvell/replacet/syntax"
)

// SourceExtensions are the file extensions read by KeysFromSourceCode.
var SourceExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"}

var (
	ErrInvalidTranslationKey = fmt.Errorf("invalid translation key")
)

// KeysFromSourceCode finds all translation keys used in the JavaScript and TypeScript files
// under dir. Directories named node_modules and hidden directories are skipped.
//
// A key is returned qualified with its namespace ("common:title") when the namespace can be
// derived from the key itself or from the useTranslation hook in scope.
func KeysFromSourceCode(fs afero.Fs, dir string) ([]string, error) {
	files, err := SourceFiles(fs, dir)
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, file := range files {
		src, err := afero.ReadFile(fs, file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		f, err := syntax.Parse(file, src)
		if err != nil {
			return nil, err
		}

		fileKeys, err := KeysFromFile(f)
		if err != nil {
			return nil, err
		}

		keys = append(keys, fileKeys...)
	}

	return removeDuplicates(keys), nil
}

// KeysFromFile returns the literal keys passed to t in a parsed module, in source order.
func KeysFromFile(f *syntax.File) ([]string, error) {
	c := &keyCollector{file: f.Name}
	c.visit(f.Root)

	if c.err != nil {
		return nil, c.err
	}

	return c.keys, nil
}

// SourceFiles returns the JavaScript and TypeScript files under dir.
func SourceFiles(fs afero.Fs, dir string) ([]string, error) {
	var files []string

	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != dir && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		if isSourceFile(path) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}

	return false
}

// keyCollector tracks the namespaces in scope the same way the Transformer does, without
// loading them.
type keyCollector struct {
	file   string
	scopes []string
	keys   []string
	err    error
}

func (c *keyCollector) visit(n *syntax.Node) {
	if c.err != nil {
		return
	}

	switch n.Kind {
	case syntax.KindProgram, syntax.KindBlock, syntax.KindCase:
		saved := c.scopes
		c.visitChildren(n)
		c.scopes = saved
		return
	case syntax.KindLexicalDecl, syntax.KindVarDecl:
		if call := hookCall(n); call != nil {
			c.scopes = nil
			for _, lit := range hookNamespaces(call) {
				namespace, _ := syntax.StringValue(lit)
				c.scopes = append(c.scopes, namespace)
			}
		}
	case syntax.KindCall:
		if syntax.CalleeName(n) == translateName {
			c.add(n)
		}
	}

	c.visitChildren(n)
}

func (c *keyCollector) visitChildren(n *syntax.Node) {
	for _, child := range n.Children {
		c.visit(child)
	}
}

func (c *keyCollector) add(call *syntax.Node) {
	args := syntax.CallArguments(call)
	if len(args) == 0 {
		return
	}

	key, ok := syntax.StringValue(args[0])
	if !ok {
		return
	}

	namespace, path := SplitKey(key, c.scopes)
	if path == "" {
		c.err = Diagnostic{
			Err:     ErrInvalidTranslationKey,
			Message: fmt.Sprintf("%s: %q has an empty path", ErrInvalidTranslationKey, key),
			File:    c.file,
			Pos:     args[0].Pos,
		}
		return
	}

	if namespace != "" {
		key = namespace + NamespaceSeparator + path
	}

	c.keys = append(c.keys, key)
}

func removeDuplicates(input []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, value := range input {
		if !seen[value] {
			result = append(result, value)
			seen[value] = true
		}
	}

	return result
}
