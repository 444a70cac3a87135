package diagfmt_test

import (
	"strings"
	"testing"

	"radix/internal/diag"
	"radix/internal/diagfmt"
	"radix/internal/source"
	"radix/internal/token"
)

func TestPretty(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexBadLiteral,
		Message:  "could not convert number 0xzz",
		Primary:  source.Span{Start: 0, End: 4},
	})
	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, diagfmt.PrettyOpts{Color: false})
	got := sb.String()
	if !strings.Contains(got, "ERROR[LEX1001]") {
		t.Fatalf("output missing severity/code: %q", got)
	}
	if !strings.Contains(got, "could not convert number 0xzz") {
		t.Fatalf("output missing message: %q", got)
	}
	if !strings.Contains(got, "at 0-4") {
		t.Fatalf("output missing span: %q", got)
	}
}

func TestPrettyEmptyBag(t *testing.T) {
	var sb strings.Builder
	diagfmt.Pretty(&sb, diag.NewBag(1), diagfmt.PrettyOpts{})
	if sb.Len() != 0 {
		t.Fatalf("empty bag must produce no output, got %q", sb.String())
	}
	diagfmt.Pretty(&sb, nil, diagfmt.PrettyOpts{})
	if sb.Len() != 0 {
		t.Fatalf("nil bag must produce no output, got %q", sb.String())
	}
}

func TestFormatTokensPretty(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Number, Text: "0x3", Span: source.Span{Start: 0, End: 1}},
		{Kind: token.Plus, Text: "+", Span: source.Span{Start: 2, End: 3}},
	}
	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, toks); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	got := sb.String()
	if !strings.Contains(got, "Number") || !strings.Contains(got, `"0x3"`) {
		t.Fatalf("unexpected pretty output: %q", got)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks := []token.Token{
		{Kind: token.Number, Text: "0x3", Span: source.Span{Start: 0, End: 1}},
	}
	var sb strings.Builder
	if err := diagfmt.FormatTokensJSON(&sb, toks); err != nil {
		t.Fatalf("json: %v", err)
	}
	got := sb.String()
	if !strings.Contains(got, `"kind": "Number"`) || !strings.Contains(got, `"text": "0x3"`) {
		t.Fatalf("unexpected json output: %q", got)
	}
}
