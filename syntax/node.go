// Package syntax holds a mutable syntax tree for JavaScript, JSX and TypeScript modules.
//
// The tree is lifted from a tree-sitter concrete syntax tree and keeps every byte of the
// source: each node stores the trivia that precedes it inside its parent, so printing an
// unmodified tree returns the input unchanged. Nodes can be replaced in place, which lets a
// rewrite walk mutate the tree while it holds pointers into it.
package syntax

import "fmt"

// Kind is the closed set of node variants the rewriter dispatches on.
// Every grammar node that is not listed maps to KindOther.
type Kind uint8

const (
	KindOther Kind = iota
	KindToken
	KindComment
	KindProgram
	KindBlock
	// KindCase is a case or default clause of a switch, a statement list of its own.
	KindCase
	KindLexicalDecl
	KindVarDecl
	KindDeclarator
	KindImport
	KindCall
	KindArguments
	KindIdentifier
	KindPropertyIdentifier
	KindString
	KindArray
	KindObject
	KindPair
	KindParen
	KindJSXElement
	KindJSXSelfClosing
	KindJSXOpening
	KindJSXClosing
	KindJSXAttribute
	KindJSXExpression
	KindJSXText
	// KindRemoved marks a node deleted by a rewrite. It prints as nothing and is swept out
	// of statement lists.
	KindRemoved
)

var kindNames = [...]string{
	KindOther:              "other",
	KindToken:              "token",
	KindComment:            "comment",
	KindProgram:            "program",
	KindBlock:              "block",
	KindCase:               "case",
	KindLexicalDecl:        "lexical_declaration",
	KindVarDecl:            "variable_declaration",
	KindDeclarator:         "declarator",
	KindImport:             "import",
	KindCall:               "call",
	KindArguments:          "arguments",
	KindIdentifier:         "identifier",
	KindPropertyIdentifier: "property_identifier",
	KindString:             "string",
	KindArray:              "array",
	KindObject:             "object",
	KindPair:               "pair",
	KindParen:              "parenthesized",
	KindJSXElement:         "jsx_element",
	KindJSXSelfClosing:     "jsx_self_closing_element",
	KindJSXOpening:         "jsx_opening_element",
	KindJSXClosing:         "jsx_closing_element",
	KindJSXAttribute:       "jsx_attribute",
	KindJSXExpression:      "jsx_expression",
	KindJSXText:            "jsx_text",
	KindRemoved:            "removed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// grammarKinds maps tree-sitter node types to their variant.
var grammarKinds = map[string]Kind{
	"comment":                  KindComment,
	"program":                  KindProgram,
	"statement_block":          KindBlock,
	"switch_case":              KindCase,
	"switch_default":           KindCase,
	"lexical_declaration":      KindLexicalDecl,
	"variable_declaration":     KindVarDecl,
	"variable_declarator":      KindDeclarator,
	"import_statement":         KindImport,
	"call_expression":          KindCall,
	"arguments":                KindArguments,
	"identifier":               KindIdentifier,
	"property_identifier":      KindPropertyIdentifier,
	"string":                   KindString,
	"array":                    KindArray,
	"object":                   KindObject,
	"pair":                     KindPair,
	"parenthesized_expression": KindParen,
	"jsx_element":              KindJSXElement,
	"jsx_self_closing_element": KindJSXSelfClosing,
	"jsx_opening_element":      KindJSXOpening,
	"jsx_closing_element":      KindJSXClosing,
	"jsx_attribute":            KindJSXAttribute,
	"jsx_expression":           KindJSXExpression,
	"jsx_text":                 KindJSXText,
}

// Position is a 1-based line and byte column in the parsed source.
// The zero value is used for synthesized nodes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position points into a source file.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Node is one node of the mutable tree.
type Node struct {
	Kind Kind
	// Type is the grammar type, e.g. "call_expression" or "(" for tokens.
	Type string
	// Field is the grammar field name of the node inside its parent, if any.
	Field string
	// Leading holds the source text between the previous sibling (or the parent's start)
	// and this node.
	Leading string
	// Text is the source text of leaf nodes.
	Text     string
	Children []*Node
	// Trailing holds the source text between the last child and the end of the node.
	Trailing string
	Pos      Position
}

// IsLeaf reports whether the node prints its Text instead of its children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsToken reports whether the node is an anonymous token with the given text.
func (n *Node) IsToken(text string) bool {
	return n.Kind == KindToken && n.Text == text
}

// ChildByField returns the first child stored under the given field name.
func (n *Node) ChildByField(field string) *Node {
	for _, c := range n.Children {
		if c.Field == field {
			return c
		}
	}

	return nil
}

// FirstChildOfKind returns the first direct child with the given kind.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}

	return nil
}

// NamedChildren returns the children that are neither tokens nor comments.
func (n *Node) NamedChildren() []*Node {
	var named []*Node
	for _, c := range n.Children {
		if c.Kind == KindToken || c.Kind == KindComment || c.Kind == KindRemoved {
			continue
		}
		named = append(named, c)
	}

	return named
}

// ReplaceWith overwrites n with r while keeping n's place in its parent:
// the leading trivia and the field name of n survive.
func (n *Node) ReplaceWith(r *Node) {
	leading, field := n.Leading, n.Field
	*n = *r
	n.Leading, n.Field = leading, field
}

// MarkRemoved turns n into a KindRemoved placeholder.
func (n *Node) MarkRemoved() {
	n.Kind = KindRemoved
	n.Type = ""
	n.Text = ""
	n.Children = nil
	n.Trailing = ""
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}

	return &c
}

// File is a parsed module.
type File struct {
	Name string
	Root *Node
	// Leading and Trailing hold the bytes outside the root node's range.
	Leading  string
	Trailing string
}
