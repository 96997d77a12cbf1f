package replacet

import (
	"fmt"
	"slices"

	"github.com/wvell/replacet/syntax"
)

// visitDeclaration handles declarations bound to the translation hook:
//
//	const { t } = useTranslation(["common", "home"]);
//
// The hook's namespaces replace the ones in scope. Once the surrounding statement list
// closes, the declaration is swept: every use of t has been inlined by then.
func (t *Transformer) visitDeclaration(decl *syntax.Node, inList bool) {
	call := hookCall(decl)
	if call == nil {
		t.visitChildren(decl)
		return
	}

	t.enterScope(call)
	t.visitChildren(decl)

	if dropHookDeclarator(decl) {
		return
	}

	if inList {
		decl.MarkRemoved()
	}
}

// dropHookDeclarator removes the hook declarator and its comma when decl declares other
// bindings as well, and reports whether it did.
func dropHookDeclarator(decl *syntax.Node) bool {
	first, count := -1, 0
	for i, c := range decl.Children {
		if c.Kind != syntax.KindDeclarator {
			continue
		}
		if first == -1 {
			first = i
		}
		count++
	}
	if count < 2 {
		return false
	}

	end := first + 1
	if end < len(decl.Children) && decl.Children[end].IsToken(",") {
		end++
	}

	// "const { t } = ..., x" keeps the space after const.
	if end < len(decl.Children) {
		decl.Children[end].Leading = decl.Children[first].Leading
	}
	decl.Children = slices.Delete(decl.Children, first, end)

	return true
}

// hookCall returns the useTranslation call initialising the first declarator of decl.
func hookCall(decl *syntax.Node) *syntax.Node {
	declarator := decl.FirstChildOfKind(syntax.KindDeclarator)
	if declarator == nil {
		return nil
	}

	value := declarator.ChildByField("value")
	if syntax.CalleeName(value) != hookName {
		return nil
	}

	return value
}

// hookNamespaces returns the string literals naming namespaces in a hook call:
// useTranslation("a") or useTranslation(["a", "b"]).
func hookNamespaces(call *syntax.Node) []*syntax.Node {
	args := syntax.CallArguments(call)
	if len(args) == 0 {
		return nil
	}

	switch arg := args[0]; arg.Kind {
	case syntax.KindString:
		return []*syntax.Node{arg}
	case syntax.KindArray:
		var literals []*syntax.Node
		for _, el := range arg.NamedChildren() {
			if el.Kind == syntax.KindString {
				literals = append(literals, el)
			}
		}
		return literals
	default:
		return nil
	}
}

// enterScope resets the namespaces in scope to the ones the hook call loads successfully.
func (t *Transformer) enterScope(call *syntax.Node) {
	t.scopes = nil

	for _, lit := range hookNamespaces(call) {
		namespace, _ := syntax.StringValue(lit)

		if err := t.cache.AddFile(namespace); err != nil {
			t.report(lit, fmt.Errorf("%s(%q): %w", hookName, namespace, err))
			continue
		}

		t.scopes = append(t.scopes, namespace)
	}
}
