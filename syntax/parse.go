package syntax

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

var (
	ErrSyntax = errors.New("syntax error")
)

// Dialect selects the grammar used to parse a module.
type Dialect uint8

const (
	// JavaScript covers .js, .jsx, .mjs and .cjs; JSX is always enabled.
	JavaScript Dialect = iota
	TypeScript
	TSX
)

func (d Dialect) String() string {
	switch d {
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	default:
		return "javascript"
	}
}

// DialectFor picks the dialect from a file name's extension.
func DialectFor(name string) Dialect {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ts", ".mts", ".cts":
		return TypeScript
	case ".tsx":
		return TSX
	default:
		return JavaScript
	}
}

func (d Dialect) language() *tree_sitter.Language {
	switch d {
	case TypeScript:
		return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	case TSX:
		return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	default:
		return tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	}
}

// Parse parses a module. The dialect is derived from name.
// A source containing syntax errors returns ErrSyntax with the first error position.
func Parse(name string, src []byte) (*File, error) {
	f, err := ParseDialect(DialectFor(name), src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	f.Name = name

	return f, nil
}

// ParseDialect parses a module with an explicit dialect.
func ParseDialect(d Dialect, src []byte) (*File, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(d.language()); err != nil {
		return nil, fmt.Errorf("loading %s grammar: %w", d, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: no tree produced", ErrSyntax)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w at %s", ErrSyntax, firstError(root))
	}

	l := &lifter{src: src}
	start, end := root.StartByte(), root.EndByte()

	return &File{
		Root:     l.lift(root, ""),
		Leading:  string(src[:start]),
		Trailing: string(src[end:]),
	}, nil
}

// ParseExpression parses src as a single JavaScript expression with JSX enabled.
func ParseExpression(src string) (*Node, error) {
	f, err := ParseDialect(JavaScript, []byte(src))
	if err != nil {
		return nil, err
	}

	stmts := f.Root.NamedChildren()
	if len(stmts) != 1 || stmts[0].Type != "expression_statement" {
		return nil, fmt.Errorf("%w: %q is not a single expression", ErrSyntax, src)
	}

	expr := stmts[0].NamedChildren()
	if len(expr) != 1 {
		return nil, fmt.Errorf("%w: %q is not a single expression", ErrSyntax, src)
	}

	node := expr[0]
	node.Leading = ""
	node.Field = ""

	return node, nil
}

// firstError returns the position of the first ERROR or MISSING node.
func firstError(n *tree_sitter.Node) Position {
	if n.IsError() || n.IsMissing() {
		return positionOf(n)
	}

	for i := range n.ChildCount() {
		c := n.Child(i)
		if c == nil || !c.HasError() && !c.IsMissing() {
			continue
		}

		return firstError(c)
	}

	return positionOf(n)
}

func positionOf(n *tree_sitter.Node) Position {
	p := n.StartPosition()
	return Position{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

// lifter converts tree-sitter nodes into mutable nodes.
type lifter struct {
	src []byte
}

// leafKinds print their source text verbatim, their inner structure is not lifted.
var leafKinds = map[Kind]bool{
	KindString:  true,
	KindJSXText: true,
	KindComment: true,
}

func (l *lifter) lift(n *tree_sitter.Node, field string) *Node {
	out := &Node{
		Type:  n.Kind(),
		Field: field,
		Pos:   positionOf(n),
	}

	if n.IsNamed() {
		out.Kind = grammarKinds[n.Kind()]
	} else {
		out.Kind = KindToken
	}

	start, end := n.StartByte(), n.EndByte()
	if n.ChildCount() == 0 || leafKinds[out.Kind] {
		out.Text = string(l.src[start:end])
		return out
	}

	cursor := n.Walk()
	defer cursor.Close()

	prev := start
	for ok := cursor.GotoFirstChild(); ok; ok = cursor.GotoNextSibling() {
		c := cursor.Node()
		child := l.lift(c, cursor.FieldName())

		// Zero-width nodes never move prev backwards.
		cs := max(c.StartByte(), prev)
		child.Leading = string(l.src[prev:cs])
		prev = max(c.EndByte(), prev)

		out.Children = append(out.Children, child)
	}

	if prev < end {
		out.Trailing = string(l.src[prev:end])
	}

	return out
}
