package replacet

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/wvell/replacet/syntax"
)

// Names recognized in transformed modules.
const (
	hookName        = "useTranslation"
	translateName   = "t"
	componentName   = "Trans"
	unsupportedAttr = "i18nKey"
	componentsAttr  = "components"
	libraryModule   = "react-i18next"
)

// dependencyHooks take a dependency array as their second argument.
var dependencyHooks = map[string]bool{
	"useEffect":   true,
	"useCallback": true,
	"useMemo":     true,
}

// NewTransformer returns a Transformer for one module.
//
// A Transformer owns its resource cache, scope stack and component maps. Create one per
// module and do not share it between goroutines.
func NewTransformer(cfg Config, opts ...Opt) (*Transformer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Transformer{
		fs:     afero.NewOsFs(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.sink == nil {
		t.sink = NewCollector(t.logger)
	}

	t.cache = NewCache(t.fs, cfg.ResourceDir(), t.logger)

	return t, nil
}

// Transformer rewrites react-i18next lookups into values read from JSON namespace files.
type Transformer struct {
	fs     afero.Fs
	sink   Sink
	logger *slog.Logger
	cache  *Cache

	// Traversal state.
	file       string
	scopes     []string
	components ComponentMap
	err        error
}

// Opt is a functional option for the Transformer.
type Opt func(*Transformer)

// WithFs reads namespace files from fs instead of the OS file system.
func WithFs(fs afero.Fs) Opt {
	return func(t *Transformer) {
		t.fs = fs
	}
}

// WithSink sends diagnostics to s. The default is a Collector logging to the Transformer's logger.
func WithSink(s Sink) Opt {
	return func(t *Transformer) {
		t.sink = s
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Opt {
	return func(t *Transformer) {
		t.logger = l
	}
}

// Cache returns the Transformer's resource cache.
func (t *Transformer) Cache() *Cache {
	return t.cache
}

// Transform rewrites f in place.
//
// Failures to load a namespace or resolve a key are reported to the sink and leave the
// affected node unchanged; the rest of the module is still transformed. The only error
// returned is ErrUnsupportedFeature (wrapped in a Diagnostic), which stops the traversal
// and leaves f partially rewritten.
func (t *Transformer) Transform(f *syntax.File) error {
	t.file = f.Name
	t.scopes = nil
	t.components = nil
	t.err = nil

	t.visit(f.Root)

	return t.err
}

func (t *Transformer) visit(n *syntax.Node) {
	if t.err != nil {
		return
	}

	switch n.Kind {
	case syntax.KindProgram, syntax.KindBlock, syntax.KindCase:
		t.visitStatements(n)
	case syntax.KindLexicalDecl, syntax.KindVarDecl:
		t.visitDeclaration(n, false)
	case syntax.KindCall:
		t.visitCall(n)
	case syntax.KindJSXElement, syntax.KindJSXSelfClosing:
		t.visitElement(n)
	default:
		t.visitChildren(n)
	}
}

func (t *Transformer) visitChildren(n *syntax.Node) {
	for _, c := range n.Children {
		t.visit(c)
	}
}

// visitStatements visits a statement list, then sweeps the statements marked for removal.
// The namespaces in scope are restored when the list closes.
func (t *Transformer) visitStatements(list *syntax.Node) {
	saved := t.scopes

	for _, stmt := range list.Children {
		if t.err != nil {
			return
		}

		switch stmt.Kind {
		case syntax.KindLexicalDecl, syntax.KindVarDecl:
			t.visitDeclaration(stmt, true)
		default:
			t.visit(stmt)
		}
	}

	sweep(list)
	t.scopes = saved
}

func (t *Transformer) report(at *syntax.Node, err error) {
	t.sink.Report(t.diagnostic(at, err))
}

// fail stops the traversal.
func (t *Transformer) fail(at *syntax.Node, err error) {
	if t.err == nil {
		t.err = t.diagnostic(at, err)
	}
}

func (t *Transformer) diagnostic(at *syntax.Node, err error) Diagnostic {
	return Diagnostic{
		Err:     err,
		Message: err.Error(),
		File:    t.file,
		Pos:     at.Pos,
	}
}
