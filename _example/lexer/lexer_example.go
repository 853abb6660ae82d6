package main

import (
	"fmt"

	"github.com/xiam/lispust/lexer"
)

func main() {
	input := `
		(if true
			(+ 2 (- 10 3))
			(+2 3)
		)
	`

	for i, tok := range lexer.Tokenize(input) {
		fmt.Printf("token[%d] (type: %v)\n\t-> %q\n\n", i, tok.Type(), tok.Text())
	}
}
