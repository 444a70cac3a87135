package token

import (
	"radix/internal/source"
)

// Token represents a single expression token with its location.
// For Number tokens Text holds the normalized literal produced by the
// base converter, never the raw run the user typed.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool { return t.Kind == Number }

// IsOperator reports whether the token is one of the four arithmetic operators.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// IsParen reports whether the token is a grouping parenthesis.
func (t Token) IsParen() bool {
	switch t.Kind {
	case LParen, RParen:
		return true
	default:
		return false
	}
}
