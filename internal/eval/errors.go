package eval

import "errors"

var (
	// ErrInvalidExpression reports an operand stack underflow or an empty
	// stack at the end of evaluation.
	ErrInvalidExpression = errors.New("Invalid expression")

	// ErrDivisionByZero reports a division whose right-hand operand is zero.
	ErrDivisionByZero = errors.New("Division by zero")

	// ErrUnexpectedToken reports a non-arithmetic token, such as a
	// parenthesis leaked by the transformer, reaching the evaluator.
	ErrUnexpectedToken = errors.New("Unexpected token")
)
