package syntax

import (
	"io"
	"strings"
)

// Print returns the source text of n, without n's own leading trivia.
func Print(n *Node) string {
	var b strings.Builder
	writeContent(&b, n)
	return b.String()
}

// String prints the whole file.
func (f *File) String() string {
	var b strings.Builder
	b.WriteString(f.Leading)
	writeContent(&b, f.Root)
	b.WriteString(f.Trailing)
	return b.String()
}

// WriteTo writes the printed file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

func writeNode(b *strings.Builder, n *Node) {
	if n.Kind == KindRemoved {
		return
	}

	b.WriteString(n.Leading)
	writeContent(b, n)
}

func writeContent(b *strings.Builder, n *Node) {
	if n == nil || n.Kind == KindRemoved {
		return
	}

	if n.IsLeaf() {
		b.WriteString(n.Text)
	} else {
		for _, c := range n.Children {
			writeNode(b, c)
		}
	}
	b.WriteString(n.Trailing)
}
