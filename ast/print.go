package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
)

// Print writes a human-readable, indented representation of a node
func Print(w io.Writer, n Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s)", indent, n.Type())
	switch n := n.(type) {

	case *Number:
		fmt.Fprintf(w, ": %d\n", n.Value)

	case *Boolean:
		fmt.Fprintf(w, ": %t\n", n.Value)

	case *BinaryOp:
		fmt.Fprintf(w, ": %s\n", n.Op.Symbol())
		printLevel(w, n.Left, level+1)
		printLevel(w, n.Right, level+1)

	case *Conditional:
		fmt.Fprintf(w, ": %s\n", KeywordIf)
		printLevel(w, n.Cond, level+1)
		printLevel(w, n.Then, level+1)
		printLevel(w, n.Else, level+1)

	case *Sequence:
		fmt.Fprintf(w, "[%d]\n", n.Len())
		for i := range n.Items {
			printLevel(w, n.Items[i], level+1)
		}

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its canonical text representation. Parsing
// the result yields an equivalent tree.
func Encode(n Node) []byte {
	var b strings.Builder
	encodeNode(&b, n)
	return []byte(b.String())
}

func encodeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {

	case *Number:
		b.WriteString(n.Encode())

	case *Boolean:
		b.WriteString(n.Encode())

	case *BinaryOp:
		b.WriteString("(" + n.Op.Symbol() + " ")
		encodeNode(b, n.Left)
		b.WriteString(" ")
		encodeNode(b, n.Right)
		b.WriteString(")")

	case *Conditional:
		b.WriteString("(" + KeywordIf + " ")
		encodeNode(b, n.Cond)
		b.WriteString(" ")
		encodeNode(b, n.Then)
		b.WriteString(" ")
		encodeNode(b, n.Else)
		b.WriteString(")")

	case *Sequence:
		b.WriteString("(")
		for i := range n.Items {
			if i > 0 {
				b.WriteString(" ")
			}
			encodeNode(b, n.Items[i])
		}
		b.WriteString(")")

	case nil:
		b.WriteString(":nil")

	default:
		panic("unknown node type")
	}
}

// Dump returns a verbose Go-syntax rendering of the tree, for debugging.
func Dump(n Node) string {
	return pretty.Sprintf("%# v", n)
}
