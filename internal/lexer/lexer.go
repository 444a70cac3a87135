package lexer

import (
	"fmt"

	"radix/internal/baseconv"
	"radix/internal/diag"
	"radix/internal/source"
	"radix/internal/token"
)

// Lexer turns one input line into a token sequence.
//
// The scan is a single left-to-right pass. Whitespace is skipped without
// flushing the pending literal run, so a run may join across spaces. Each of
// the six operator/paren bytes first flushes the pending run through the
// base converter, then emits its own token. Every other byte, including the
// letters the converter's grammar relies on, joins the pending run.
type Lexer struct {
	cursor Cursor
	opts   Options
}

func New(line string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor([]byte(line)),
		opts:   opts,
	}
}

// Tokenize scans the whole line. A literal run the converter rejects is
// reported and dropped; tokenizing never aborts the rest of the line.
func (lx *Lexer) Tokenize() []token.Token {
	toks := make([]token.Token, 0, 8)
	var run []byte
	var runSpan source.Span

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case isSpace(ch):
			lx.cursor.Bump()

		case operatorKind(ch) != token.Invalid:
			toks = lx.flushRun(toks, &run, runSpan)
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			toks = append(toks, token.Token{
				Kind: operatorKind(ch),
				Span: lx.cursor.SpanFrom(m),
				Text: string(ch),
			})

		default:
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(m)
			if len(run) == 0 {
				runSpan = sp
			} else {
				runSpan = runSpan.Cover(sp)
			}
			run = append(run, ch)
		}
	}
	return lx.flushRun(toks, &run, runSpan)
}

// flushRun converts the pending literal run into a Number token. On
// conversion failure the run is discarded with a diagnostic.
func (lx *Lexer) flushRun(toks []token.Token, run *[]byte, sp source.Span) []token.Token {
	if len(*run) == 0 {
		return toks
	}
	lit := string(*run)
	*run = (*run)[:0]

	norm, err := baseconv.Convert(lit)
	if err != nil {
		lx.report(diag.LexBadLiteral, sp, fmt.Sprintf("could not convert number %s", lit))
		return toks
	}
	return append(toks, token.Token{Kind: token.Number, Span: sp, Text: norm})
}

// Tokenize is the package-level convenience wrapper around a one-shot Lexer.
func Tokenize(line string, reporter diag.Reporter) []token.Token {
	return New(line, Options{Reporter: reporter}).Tokenize()
}
