package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexBadLiteral  Code = 1001
	LexEmptyInput  Code = 1002

	// Evaluation
	EvalInfo               Code = 3000
	EvalInvalidExpression  Code = 3001
	EvalDivisionByZero     Code = 3002
	EvalUnexpectedToken    Code = 3003
	EvalNormalizationLimit Code = 3004

	// I/O
	IOReadLineError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexBadLiteral:          "Literal could not be converted",
	LexEmptyInput:          "Empty input",
	EvalInfo:               "Evaluation information",
	EvalInvalidExpression:  "Invalid expression",
	EvalDivisionByZero:     "Division by zero",
	EvalUnexpectedToken:    "Unexpected token",
	EvalNormalizationLimit: "Literal never normalized to a decimal integer",
	IOReadLineError:        "I/O read line error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVA%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
