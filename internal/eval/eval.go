// Package eval executes postfix token sequences on an int64 operand stack.
package eval

import (
	"radix/internal/baseconv"
	"radix/internal/token"
)

// Evaluate runs one pass over a postfix token sequence.
//
// Number tokens are normalized through the base converter to a plain decimal
// int64 before being pushed. Operators pop a then b and compute b OP a, so
// the operand pushed earlier is the left-hand side of - and /. On success
// the top of the stack is returned; surplus values beneath it are ignored,
// which is accepted lenient behavior.
func Evaluate(toks []token.Token) (int64, error) {
	var stack []int64

	pop := func() (int64, bool) {
		if len(stack) == 0 {
			return 0, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, t := range toks {
		switch t.Kind {
		case token.Number:
			n, err := baseconv.Normalize(t.Text)
			if err != nil {
				return 0, err
			}
			stack = append(stack, n)

		case token.Plus, token.Minus, token.Star, token.Slash:
			a, ok := pop()
			if !ok {
				return 0, ErrInvalidExpression
			}
			b, ok := pop()
			if !ok {
				return 0, ErrInvalidExpression
			}
			switch t.Kind {
			case token.Plus:
				stack = append(stack, b+a)
			case token.Minus:
				stack = append(stack, b-a)
			case token.Star:
				stack = append(stack, b*a)
			case token.Slash:
				if a == 0 {
					return 0, ErrDivisionByZero
				}
				stack = append(stack, b/a)
			}

		default:
			return 0, ErrUnexpectedToken
		}
	}

	result, ok := pop()
	if !ok {
		return 0, ErrInvalidExpression
	}
	return result, nil
}
