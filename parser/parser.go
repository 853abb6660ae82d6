// Package parser builds expression trees out of lexer tokens using recursive
// descent.
package parser

import (
	"strconv"

	"github.com/xiam/lispust/ast"
	"github.com/xiam/lispust/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int
}

func newParser(tokens []lexer.Token) *parser {
	return &parser{tokens: tokens}
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) backup() {
	if p.pos > 0 {
		p.pos--
	}
}

// Parse builds the tree of the single parenthesized form in tokens. The form
// must span all of the tokens.
func Parse(tokens []lexer.Token) (ast.Node, error) {
	p := newParser(tokens)

	tok, ok := p.peek()
	if !ok {
		return nil, newParseError(ErrUnexpectedEOF, nil)
	}
	switch tok.Type() {
	case lexer.TokenOpenExpression:
		// ok
	case lexer.TokenCloseExpression:
		return nil, newParseError(ErrTooManyCloseParens, nil)
	default:
		return nil, newParseError(ErrMissingOpenParen, &tok)
	}

	node, err := parseForm(p)
	if err != nil {
		return nil, err
	}

	if tok, ok := p.peek(); ok {
		return nil, newParseError(ErrTrailingTokens, &tok)
	}
	return node, nil
}

// ParseString tokenizes and parses input.
func ParseString(input string) (ast.Node, error) {
	return Parse(lexer.Tokenize(input))
}

// parseForm consumes exactly one complete form: an atom or a parenthesized
// body up to its matching close parenthesis.
func parseForm(p *parser) (ast.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, newParseError(ErrUnexpectedEOF, nil)
	}

	switch tok.Type() {
	case lexer.TokenOpenExpression:
		return parseFormBody(p)
	case lexer.TokenCloseExpression:
		return nil, newParseError(ErrTooManyCloseParens, nil)
	default:
		return parseAtom(tok)
	}
}

func parseAtom(tok lexer.Token) (ast.Node, error) {
	switch tok.Text() {
	case ast.KeywordTrue:
		return ast.NewBoolean(true), nil
	case ast.KeywordFalse:
		return ast.NewBoolean(false), nil
	}

	i32, err := strconv.ParseInt(tok.Text(), 10, 32)
	if err != nil {
		return nil, newParseError(ErrInvalidToken, &tok)
	}
	return ast.NewNumber(int32(i32)), nil
}

// parseFormBody consumes what follows an open parenthesis, including the
// matching close parenthesis. Nesting is tracked by the recursion itself.
func parseFormBody(p *parser) (ast.Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, newParseError(ErrUnexpectedEOF, nil)
	}

	switch tok.Type() {
	case lexer.TokenCloseExpression:
		return ast.NewSequence(), nil

	case lexer.TokenWord:
		if op, ok := ast.LookupOperator(tok.Text()); ok {
			operands, err := parseOperands(p, 2)
			if err != nil {
				return nil, err
			}
			return ast.NewBinaryOp(op, operands[0], operands[1]), nil
		}
		if tok.Text() == ast.KeywordIf {
			operands, err := parseOperands(p, 3)
			if err != nil {
				return nil, err
			}
			return ast.NewConditional(operands[0], operands[1], operands[2]), nil
		}
	}

	p.backup()
	return parseSequence(p)
}

// parseOperands reads n forms and then requires the closing parenthesis.
func parseOperands(p *parser, n int) ([]ast.Node, error) {
	operands := make([]ast.Node, 0, n)
	for i := 0; i < n; i++ {
		node, err := parseForm(p)
		if err != nil {
			return nil, err
		}
		operands = append(operands, node)
	}

	tok, ok := p.next()
	if !ok {
		return nil, newParseError(ErrUnexpectedEOF, nil)
	}
	if !tok.Is(lexer.TokenCloseExpression) {
		return nil, newParseError(ErrUnexpectedToken, &tok)
	}
	return operands, nil
}

func parseSequence(p *parser) (ast.Node, error) {
	seq := ast.NewSequence()
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, newParseError(ErrUnexpectedEOF, nil)
		}
		if tok.Is(lexer.TokenCloseExpression) {
			p.next()
			return seq, nil
		}

		node, err := parseForm(p)
		if err != nil {
			return nil, err
		}
		seq.Push(node)
	}
}
