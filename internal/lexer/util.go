package lexer

import (
	"radix/internal/token"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// operatorKind maps one of the six operator/paren bytes to its token kind,
// or Invalid for anything else.
func operatorKind(b byte) token.Kind {
	switch b {
	case '+':
		return token.Plus
	case '-':
		return token.Minus
	case '*':
		return token.Star
	case '/':
		return token.Slash
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	default:
		return token.Invalid
	}
}
