package lexer

import (
	"radix/internal/diag"
	"radix/internal/source"
)

type Options struct {
	Reporter diag.Reporter // may be nil: diagnostics are dropped, lexing continues
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
