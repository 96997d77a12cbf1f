package syntax

// Token returns an anonymous token node.
func Token(text string) *Node {
	return &Node{Kind: KindToken, Type: text, Text: text}
}

// Ident returns an identifier node.
func Ident(name string) *Node {
	return &Node{Kind: KindIdentifier, Type: "identifier", Text: name}
}

// StringLiteral returns a double-quoted string literal holding value.
func StringLiteral(value string) *Node {
	return &Node{Kind: KindString, Type: "string", Text: Quote(value)}
}

// WithLeading sets the leading trivia of n and returns n.
func WithLeading(n *Node, leading string) *Node {
	n.Leading = leading
	return n
}

// Fragment returns <>children</>.
func Fragment(children []*Node) *Node {
	opening := &Node{
		Kind:     KindJSXOpening,
		Type:     "jsx_opening_element",
		Field:    "open_tag",
		Children: []*Node{Token("<"), Token(">")},
	}
	closing := &Node{
		Kind:     KindJSXClosing,
		Type:     "jsx_closing_element",
		Field:    "close_tag",
		Children: []*Node{Token("<"), Token("/"), Token(">")},
	}

	nodes := make([]*Node, 0, len(children)+2)
	nodes = append(nodes, opening)
	nodes = append(nodes, children...)
	nodes = append(nodes, closing)

	return &Node{Kind: KindJSXElement, Type: "jsx_element", Children: nodes}
}

// Element returns a JSX element with the given name, attributes and children.
// Without children the element is self-closing: <name attrs />.
func Element(name *Node, attrs []*Node, children []*Node) *Node {
	name = WithLeading(name.Clone(), "")
	name.Field = "name"

	head := []*Node{Token("<"), name}
	for _, a := range attrs {
		a = WithLeading(a.Clone(), " ")
		a.Field = "attribute"
		head = append(head, a)
	}

	if len(children) == 0 {
		head = append(head, WithLeading(Token("/"), " "), Token(">"))
		return &Node{Kind: KindJSXSelfClosing, Type: "jsx_self_closing_element", Children: head}
	}

	opening := &Node{
		Kind:     KindJSXOpening,
		Type:     "jsx_opening_element",
		Field:    "open_tag",
		Children: append(head, Token(">")),
	}

	closingName := WithLeading(name.Clone(), "")
	closing := &Node{
		Kind:     KindJSXClosing,
		Type:     "jsx_closing_element",
		Field:    "close_tag",
		Children: []*Node{Token("<"), Token("/"), closingName, Token(">")},
	}

	nodes := make([]*Node, 0, len(children)+2)
	nodes = append(nodes, opening)
	nodes = append(nodes, children...)
	nodes = append(nodes, closing)

	return &Node{Kind: KindJSXElement, Type: "jsx_element", Children: nodes}
}

// Invocation returns callee(arg).
func Invocation(callee, arg *Node) *Node {
	callee = WithLeading(callee, "")
	callee.Field = "function"

	arg = WithLeading(arg, "")
	arg.Field = ""

	args := &Node{
		Kind:     KindArguments,
		Type:     "arguments",
		Field:    "arguments",
		Children: []*Node{Token("("), arg, Token(")")},
	}

	return &Node{Kind: KindCall, Type: "call_expression", Children: []*Node{callee, args}}
}
