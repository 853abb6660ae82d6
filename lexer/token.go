package lexer

import (
	"fmt"
)

// Token is one lexical unit: a parenthesis or a word. Tokens carry no
// position.
type Token struct {
	tt     TokenType
	lexeme string
}

// NewToken returns a token of type tt holding lexeme.
func NewToken(tt TokenType, lexeme string) Token {
	return Token{tt: tt, lexeme: lexeme}
}

// Type returns the token type.
func (t Token) Type() TokenType { return t.tt }

// Text returns the lexeme exactly as read.
func (t Token) Text() string { return t.lexeme }

// Is reports whether t is of type tt.
func (t Token) Is(tt TokenType) bool { return t.tt == tt }

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q)", t.tt, t.lexeme)
}
