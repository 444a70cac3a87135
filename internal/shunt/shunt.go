// Package shunt converts infix token sequences to postfix (reverse-Polish)
// order using the shunting-yard algorithm, restricted to the four
// flat-precedence arithmetic operators.
package shunt

import (
	"radix/internal/token"
)

// ToPostfix reorders tokens into postfix. All four operators share one
// precedence tier and associate left: every operator on top of the stack is
// popped before a new one is pushed, unless a left paren blocks it.
//
// Mismatched parentheses are handled leniently: a stray ')' whose pop loop
// empties the stack is silently ignored, and any '(' still on the stack at
// end of input is flushed into the output along with the operators. Both are
// long-standing observable behavior; the evaluator rejects the leaked paren.
func ToPostfix(toks []token.Token) []token.Token {
	output := make([]token.Token, 0, len(toks))
	var stack []token.Token

	for _, t := range toks {
		switch {
		case t.Kind == token.Number:
			output = append(output, t)

		case t.IsOperator():
			for len(stack) > 0 && stack[len(stack)-1].Kind != token.LParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case t.Kind == token.LParen:
			stack = append(stack, t)

		case t.Kind == token.RParen:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.LParen {
					break
				}
				output = append(output, top)
			}

		default:
			// Kinds the lexer never produces pass through untouched.
			output = append(output, t)
		}
	}

	for len(stack) > 0 {
		output = append(output, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return output
}
