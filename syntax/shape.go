package syntax

// CalleeName returns the identifier a call expression calls, or "" when the callee is
// anything other than a bare identifier.
func CalleeName(call *Node) string {
	if call == nil || call.Kind != KindCall {
		return ""
	}

	callee := call.ChildByField("function")
	if callee == nil || callee.Kind != KindIdentifier {
		return ""
	}

	return callee.Text
}

// CallArguments returns the argument expressions of a call expression.
func CallArguments(call *Node) []*Node {
	if call == nil || call.Kind != KindCall {
		return nil
	}

	args := call.ChildByField("arguments")
	if args == nil || args.Kind != KindArguments {
		return nil
	}

	return args.NamedChildren()
}

// StringValue returns the decoded value of a string literal.
// ok is false when n is not a string literal.
func StringValue(n *Node) (value string, ok bool) {
	if n == nil || n.Kind != KindString {
		return "", false
	}

	return Unquote(n.Text), true
}

// Unparen strips one layer of parentheses.
func Unparen(n *Node) *Node {
	if n == nil || n.Kind != KindParen {
		return n
	}

	named := n.NamedChildren()
	if len(named) != 1 {
		return n
	}

	return named[0]
}

// IsElement reports whether n is a JSX element, self-closing or not.
func IsElement(n *Node) bool {
	return n != nil && (n.Kind == KindJSXElement || n.Kind == KindJSXSelfClosing)
}

// openingOf returns the node holding the name and the attributes of an element.
func openingOf(el *Node) *Node {
	switch el.Kind {
	case KindJSXElement:
		return el.FirstChildOfKind(KindJSXOpening)
	case KindJSXSelfClosing:
		return el
	default:
		return nil
	}
}

// ElementNameNode returns the name node of a JSX element, nil for fragments.
func ElementNameNode(el *Node) *Node {
	if !IsElement(el) {
		return nil
	}

	opening := openingOf(el)
	if opening == nil {
		return nil
	}

	return opening.ChildByField("name")
}

// ElementName returns the tag name of a JSX element as written, "" for fragments.
func ElementName(el *Node) string {
	name := ElementNameNode(el)
	if name == nil {
		return ""
	}

	return Print(name)
}

// ElementAttributes returns the attribute nodes of a JSX element.
func ElementAttributes(el *Node) []*Node {
	if !IsElement(el) {
		return nil
	}

	opening := openingOf(el)
	if opening == nil {
		return nil
	}

	var attrs []*Node
	for _, c := range opening.Children {
		if c.Kind == KindJSXAttribute {
			attrs = append(attrs, c)
		}
	}

	return attrs
}

// ElementContent returns the children of a JSX element between its opening and
// closing tags. Self-closing elements have none.
func ElementContent(el *Node) []*Node {
	if el == nil || el.Kind != KindJSXElement {
		return nil
	}

	var content []*Node
	for _, c := range el.Children {
		if c.Kind == KindJSXOpening || c.Kind == KindJSXClosing || c.Kind == KindRemoved {
			continue
		}
		content = append(content, c)
	}

	return content
}

// AttributeName returns the name of a JSX attribute.
func AttributeName(attr *Node) string {
	if attr == nil || attr.Kind != KindJSXAttribute {
		return ""
	}

	named := attr.NamedChildren()
	if len(named) == 0 {
		return ""
	}

	return Print(named[0])
}

// AttributeValue returns the value of a JSX attribute, nil for boolean attributes.
func AttributeValue(attr *Node) *Node {
	if attr == nil || attr.Kind != KindJSXAttribute {
		return nil
	}

	named := attr.NamedChildren()
	if len(named) < 2 {
		return nil
	}

	return named[1]
}

// ContainedExpression returns the expression of a JSX expression container.
func ContainedExpression(n *Node) *Node {
	if n == nil || n.Kind != KindJSXExpression {
		return nil
	}

	named := n.NamedChildren()
	if len(named) != 1 {
		return nil
	}

	return named[0]
}

// ImportSource returns the module specifier of an import statement.
func ImportSource(n *Node) string {
	if n == nil || n.Kind != KindImport {
		return ""
	}

	src, _ := StringValue(n.ChildByField("source"))
	return src
}

// PropertyKey returns the key of an object property as a plain name.
func PropertyKey(pair *Node) (string, bool) {
	if pair == nil || pair.Kind != KindPair {
		return "", false
	}

	key := pair.ChildByField("key")
	if key == nil {
		return "", false
	}

	switch key.Kind {
	case KindPropertyIdentifier, KindIdentifier:
		return key.Text, true
	case KindString:
		return StringValue(key)
	default:
		return "", false
	}
}
