package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lispust/ast"
	"github.com/xiam/lispust/parser"
)

func printTree(node ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)

	var children []ast.Node
	switch n := node.(type) {
	case *ast.Number:
		fmt.Printf("%s<%s>%d</%s>\n", indent, n.Type(), n.Value, n.Type())
		return
	case *ast.Boolean:
		fmt.Printf("%s<%s>%t</%s>\n", indent, n.Type(), n.Value, n.Type())
		return
	case *ast.BinaryOp:
		fmt.Printf("%s<%s op=%q>\n", indent, n.Type(), n.Op.Name())
		children = []ast.Node{n.Left, n.Right}
	case *ast.Conditional:
		fmt.Printf("%s<%s>\n", indent, n.Type())
		children = []ast.Node{n.Cond, n.Then, n.Else}
	case *ast.Sequence:
		fmt.Printf("%s<%s>\n", indent, n.Type())
		children = n.Items
	}

	for i := range children {
		printIndentedTree(children[i], indentationLevel+1)
	}
	fmt.Printf("%s</%s>\n", indent, node.Type())
}

func main() {
	input := `(if (if true false true) (+ 1 2) (- 10 (+ 3 4)))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	printTree(root)
}
