// Package lispust evaluates a tiny S-expression language: integer and boolean
// literals, binary + and -, and the if form.
//
//	out, err := lispust.Run("(+ (- 10 3) 2)") // "9"
package lispust

import (
	"bytes"
	"io"

	"github.com/xiam/lispust/ast"
	"github.com/xiam/lispust/lexer"
	"github.com/xiam/lispust/parser"
)

// Run tokenizes, parses and evaluates input and renders the resulting value.
// Errors are either a *parser.ParseError or an EvalError, returned as-is.
func Run(input string) (string, error) {
	value, err := Eval(input)
	if err != nil {
		return "", err
	}
	return value.String(), nil
}

// Eval is like Run but returns the value instead of its rendering.
func Eval(input string) (Value, error) {
	node, err := parse(input)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(node)
}

func parse(input string) (ast.Node, error) {
	return parser.Parse(lexer.Tokenize(input))
}

// Reader evaluates one expression read from an io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader that consumes r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Run reads r until EOF and evaluates its content.
func (r *Reader) Run() (string, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.r); err != nil {
		return "", err
	}
	return Run(buf.String())
}
