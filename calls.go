package replacet

import (
	"fmt"
	"strings"

	"github.com/wvell/replacet/syntax"
)

func (t *Transformer) visitCall(call *syntax.Node) {
	switch name := syntax.CalleeName(call); {
	case dependencyHooks[name]:
		scrubDependencies(call)
	case name == translateName:
		t.rewriteTranslate(call)
	}

	t.visitChildren(call)
}

// rewriteTranslate replaces t("key") and t("key", values) with the resolved value.
// Calls whose key is not a string literal are left alone.
func (t *Transformer) rewriteTranslate(call *syntax.Node) {
	args := syntax.CallArguments(call)
	if len(args) == 0 {
		return
	}

	keyNode := args[0]
	key, ok := syntax.StringValue(keyNode)
	if !ok {
		return
	}

	value, err := t.resolve(key)
	if err != nil {
		t.report(keyNode, fmt.Errorf("%s(%q): %w", translateName, key, err))
		return
	}

	var replacement *syntax.Node
	if len(args) == 1 {
		replacement, err = t.inlineText(value)
	} else {
		// Only a variable or an object literal can carry the interpolation values.
		values := args[1]
		if values.Kind != syntax.KindIdentifier && values.Kind != syntax.KindObject {
			return
		}
		replacement, err = interpolate(value, values)
	}

	if err != nil {
		t.report(keyNode, fmt.Errorf("failed to make node from %q for %q: %w", value, key, err))
		return
	}

	call.ReplaceWith(replacement)
}

// inlineText returns a string literal for plain text, and the spliced markup when value
// contains tags.
func (t *Transformer) inlineText(value string) (*syntax.Node, error) {
	if !strings.Contains(value, "<") {
		return syntax.StringLiteral(value), nil
	}

	return t.splice(value)
}

// scrubDependencies drops t from the dependency array of useEffect, useCallback and useMemo.
// The array is only rebuilt when t was listed.
func scrubDependencies(call *syntax.Node) {
	args := syntax.CallArguments(call)
	if len(args) < 2 || args[1].Kind != syntax.KindArray {
		return
	}

	deps := args[1]
	if len(deps.Children) < 2 {
		return
	}

	var (
		kept         []*syntax.Node
		firstLeading string
		seenFirst    bool
		removed      bool
	)
	for _, el := range deps.Children[1 : len(deps.Children)-1] {
		if el.Kind == syntax.KindToken {
			continue
		}

		if !seenFirst {
			firstLeading = el.Leading
			seenFirst = true
		}

		if el.Kind == syntax.KindIdentifier && el.Text == translateName {
			removed = true
			continue
		}

		kept = append(kept, el)
	}

	if !removed {
		return
	}

	children := []*syntax.Node{deps.Children[0]}
	elements := 0
	for i, el := range kept {
		if i == 0 {
			el.Leading = firstLeading
		}

		if el.Kind != syntax.KindComment {
			if elements > 0 {
				children = append(children, syntax.Token(","))
				if el.Leading == "" {
					el.Leading = " "
				}
			}
			elements++
		}

		children = append(children, el)
	}
	children = append(children, deps.Children[len(deps.Children)-1])

	deps.Children = children
}
