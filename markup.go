package replacet

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/wvell/replacet/syntax"
)

// ComponentMap maps the tag names used inside translated text to the JSX elements that
// replace them, as passed to <Trans components={{ link: <Link href="/" /> }}>.
type ComponentMap map[string]*syntax.Node

// Names returns the tag names in the map, sorted.
func (m ComponentMap) Names() []string {
	names := maps.Keys(m)
	slices.Sort(names)
	return names
}

// visitElement handles <Trans>. Its component map is in effect while its children are
// visited, after which the element itself is replaced by a fragment of its children.
func (t *Transformer) visitElement(el *syntax.Node) {
	if syntax.ElementName(el) != componentName {
		t.visitChildren(el)
		return
	}

	components, at, err := captureComponents(el)
	if err != nil {
		t.fail(at, err)
		return
	}

	if len(components) > 0 {
		t.logger.Debug("captured components", "file", t.file, "pos", el.Pos.String(), "names", components.Names())
	}

	saved := t.components
	t.components = components
	t.visitChildren(el)
	t.components = saved

	if t.err != nil {
		return
	}

	frag := syntax.Fragment(syntax.ElementContent(el))
	if closing := el.FirstChildOfKind(syntax.KindJSXClosing); closing != nil {
		frag.Children[len(frag.Children)-1].Leading = closing.Leading
	}

	el.ReplaceWith(frag)
}

// captureComponents reads the attributes of a <Trans> element. On failure it returns the
// node the failure is located at.
func captureComponents(el *syntax.Node) (ComponentMap, *syntax.Node, error) {
	components := make(ComponentMap)

	for _, attr := range syntax.ElementAttributes(el) {
		value := syntax.AttributeValue(attr)

		switch syntax.AttributeName(attr) {
		case unsupportedAttr:
			if value != nil && value.Kind == syntax.KindString {
				return nil, attr, fmt.Errorf("%w: <%s %s=%s> must be rewritten as a %s call",
					ErrUnsupportedFeature, componentName, unsupportedAttr, value.Text, translateName)
			}
		case componentsAttr:
			obj := syntax.ContainedExpression(value)
			if obj == nil || obj.Kind != syntax.KindObject {
				continue
			}

			for _, prop := range obj.NamedChildren() {
				name, ok := syntax.PropertyKey(prop)
				if !ok {
					continue
				}

				if tmpl := syntax.Unparen(prop.ChildByField("value")); syntax.IsElement(tmpl) {
					components[name] = tmpl
				}
			}
		}
	}

	return components, nil, nil
}

// splice parses text as JSX and replaces the tags found in the active component map with
// their templates, keeping the children written in the text:
//
//	"Read <link>the docs</link>" with link: <a href="/docs" />
//	<>Read <a href="/docs">the docs</a></>
//
// Text without any element collapses to a string literal, as does a fragment holding a
// single text node.
func (t *Transformer) splice(text string) (*syntax.Node, error) {
	frag, err := syntax.ParseExpression("<>" + text + "</>")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTemplate, err)
	}

	content := syntax.ElementContent(frag)

	hasElement := false
	for _, child := range content {
		if !syntax.IsElement(child) {
			continue
		}
		hasElement = true

		tmpl, ok := t.components[syntax.ElementName(child)]
		if !ok {
			continue
		}

		child.ReplaceWith(syntax.Element(
			syntax.ElementNameNode(tmpl),
			syntax.ElementAttributes(tmpl),
			syntax.ElementContent(child),
		))
	}

	if !hasElement {
		return syntax.StringLiteral(text), nil
	}

	if len(content) == 1 && content[0].Kind == syntax.KindJSXText {
		return syntax.StringLiteral(content[0].Text), nil
	}

	return frag, nil
}
