package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/lispust/lexer"
)

var (
	ErrUnexpectedEOF      = errors.New("no parenthesis in tokens")
	ErrTooManyCloseParens = errors.New("too many close parentheses")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrMissingOpenParen   = errors.New("expression must begin with an open parenthesis")
	ErrTrailingTokens     = errors.New("unexpected tokens after expression")
)

// ParseError reports malformed input. It always wraps one of the Err*
// sentinels above.
type ParseError struct {
	Reason string
	Token  string

	err error
}

func newParseError(err error, tok *lexer.Token) *ParseError {
	pe := &ParseError{
		Reason: err.Error(),
		err:    err,
	}
	if tok != nil {
		pe.Token = tok.Text()
		pe.Reason = fmt.Sprintf("%v: %q", err, tok.Text())
	}
	return pe
}

func (e *ParseError) Error() string {
	return "invalid expression: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.err
}
