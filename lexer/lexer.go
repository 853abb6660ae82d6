// Package lexer splits raw expression text into parentheses and
// whitespace-delimited words.
package lexer

import (
	"strings"
)

// Tokenize returns all the tokens within the given input, in order. It never
// fails: an empty or blank input yields an empty slice.
//
// Parentheses are always isolated tokens no matter the surrounding spacing,
// anything between them and whitespace is one opaque word ("+2" stays whole).
func Tokenize(input string) []Token {
	fields := strings.Fields(pad(input))

	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, NewToken(classify(field), field))
	}
	return tokens
}

// pad surrounds every parenthesis with spaces.
func pad(input string) string {
	var b strings.Builder
	b.Grow(len(input) + len(input)/2)
	for _, r := range input {
		if _, ok := delimiter(r); ok {
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func classify(field string) TokenType {
	if len(field) == 1 {
		if tt, ok := delimiter(rune(field[0])); ok {
			return tt
		}
	}
	return TokenWord
}
