// Package token defines the token kinds shared by the lexer, the
// infix-to-postfix transformer and the postfix evaluator.
//
// The set is deliberately small: numeric literals, the four flat-precedence
// arithmetic operators and grouping parentheses. Tokens are immutable once
// produced; the slice that holds them owns them exclusively.
package token
