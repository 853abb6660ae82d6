package lexer

// TokenType classifies a token.
type TokenType uint8

// Token types.
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // "("
	TokenCloseExpression           // ")"
	TokenWord                      // numerals, keywords, operators and any other run of text
)

// delimiters maps the runes that always form a token on their own.
var delimiters = map[rune]TokenType{
	'(': TokenOpenExpression,
	')': TokenCloseExpression,
}

func (tt TokenType) String() string {
	switch tt {
	case TokenOpenExpression:
		return "open_expression"
	case TokenCloseExpression:
		return "close_expression"
	case TokenWord:
		return "word"
	}
	return "invalid"
}

// delimiter reports the type of r when r is a delimiter.
func delimiter(r rune) (TokenType, bool) {
	tt, ok := delimiters[r]
	return tt, ok
}
