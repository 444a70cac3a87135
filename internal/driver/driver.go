// Package driver wires the lexer, the postfix transformer and the evaluator
// into the one-line pipeline the CLI and the REPL share.
package driver

import (
	"radix/internal/baseconv"
	"radix/internal/diag"
	"radix/internal/eval"
	"radix/internal/lexer"
	"radix/internal/shunt"
)

// LineResult carries the outcome of evaluating one input line together with
// the diagnostics tokenization produced along the way.
type LineResult struct {
	Value int64
	Bag   *diag.Bag
}

// EvalLine runs raw line -> tokens -> postfix -> value. Dropped literals
// land in the bag; evaluation failures come back as the error.
func EvalLine(line string, maxDiagnostics int) (LineResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(line, diag.BagReporter{Bag: bag})
	value, err := eval.Evaluate(shunt.ToPostfix(toks))
	return LineResult{Value: value, Bag: bag}, err
}

// ConvertLiteral converts one batch argument. Without a forced base the
// single-pass conversion is returned verbatim; with one, the converted
// literal is normalized to an int64 and rendered in that base.
func ConvertLiteral(arg string, base baseconv.OutputBase, forced, grouped bool) (string, error) {
	lit, err := baseconv.Convert(arg)
	if err != nil {
		return "", err
	}
	if !forced {
		return lit, nil
	}
	n, err := baseconv.Normalize(lit)
	if err != nil {
		return "", err
	}
	if grouped && base == baseconv.BaseDecimal {
		return baseconv.FormatGrouped(n), nil
	}
	return baseconv.Format(n, base), nil
}
