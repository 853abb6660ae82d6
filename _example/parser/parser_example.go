package main

import (
	"log"
	"os"

	"github.com/xiam/lispust/ast"
	"github.com/xiam/lispust/parser"
)

func main() {
	input := `(if (if true false true) (+ 1 2) (- 10 (+ 3 4)))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	ast.Print(os.Stdout, root)
}
