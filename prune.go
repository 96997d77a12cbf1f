package replacet

import "github.com/wvell/replacet/syntax"

// sweep drops the statements marked removed and the imports of the translation library
// from a statement list. When the list starts with dropped statements, the first kept one
// takes over their leading trivia.
func sweep(list *syntax.Node) {
	var (
		kept    = list.Children[:0]
		leading string
		carry   bool
	)
	for _, stmt := range list.Children {
		if stmt.Kind == syntax.KindRemoved || syntax.ImportSource(stmt) == libraryModule {
			if len(kept) == 0 && !carry {
				leading, carry = stmt.Leading, true
			}
			continue
		}

		if carry {
			stmt.Leading = leading
			carry = false
		}
		kept = append(kept, stmt)
	}

	list.Children = kept
}
