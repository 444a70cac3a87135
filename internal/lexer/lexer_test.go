package lexer_test

import (
	"testing"

	"radix/internal/diag"
	"radix/internal/lexer"
	"radix/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func equalKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeExpression(t *testing.T) {
	toks := lexer.Tokenize("3 + 4 * 2", nil)
	want := []token.Kind{token.Number, token.Plus, token.Number, token.Star, token.Number}
	if !equalKinds(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
	// Number text holds the normalized literal, not the raw run.
	if toks[0].Text != "0x3" || toks[2].Text != "0x4" || toks[4].Text != "0x2" {
		t.Fatalf("normalized texts = %q %q %q", toks[0].Text, toks[2].Text, toks[4].Text)
	}
}

func TestTokenizeParens(t *testing.T) {
	toks := lexer.Tokenize("(3+4)*2", nil)
	want := []token.Kind{
		token.LParen, token.Number, token.Plus, token.Number, token.RParen,
		token.Star, token.Number,
	}
	if !equalKinds(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
}

func TestTokenizeSpans(t *testing.T) {
	toks := lexer.Tokenize("10+2", nil)
	if toks[0].Span.Start != 0 || toks[0].Span.End != 2 {
		t.Fatalf("first literal span = %v", toks[0].Span)
	}
	if toks[1].Span.Start != 2 || toks[1].Span.End != 3 {
		t.Fatalf("operator span = %v", toks[1].Span)
	}
}

// Whitespace skips without flushing: a literal run joins across spaces.
// "0x ff" is one run "0xff", not two literals.
func TestTokenizeRunJoinsAcrossSpaces(t *testing.T) {
	toks := lexer.Tokenize("0x ff", nil)
	if len(toks) != 1 || toks[0].Kind != token.Number {
		t.Fatalf("tokens = %v", toks)
	}
	if toks[0].Text != "255" {
		t.Fatalf("text = %q, want %q", toks[0].Text, "255")
	}
}

// Base-marker letters are ordinary run bytes, never operators.
func TestTokenizeLiteralMarkers(t *testing.T) {
	cases := []struct {
		in, norm string
	}{
		{"0xff", "255"},
		{"101b", "0x5"},
		{"Fx3ff8000000000000", "1.5"},
		{"17o", "0xf"},
	}
	for _, tc := range cases {
		toks := lexer.Tokenize(tc.in, nil)
		if len(toks) != 1 || toks[0].Text != tc.norm {
			t.Errorf("Tokenize(%q) = %v, want one Number %q", tc.in, toks, tc.norm)
		}
	}
}

func TestTokenizeBadLiteralDropped(t *testing.T) {
	bag := diag.NewBag(8)
	toks := lexer.Tokenize("0xzz + 4", diag.BagReporter{Bag: bag})

	// The bad run is dropped, not turned into a token; the rest survives.
	want := []token.Kind{token.Plus, token.Number}
	if !equalKinds(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
	if !bag.HasErrors() {
		t.Fatalf("dropped literal must produce a diagnostic")
	}
	d := bag.Items()[0]
	if d.Code != diag.LexBadLiteral {
		t.Fatalf("diagnostic code = %v", d.Code)
	}
	if d.Primary.Start != 0 || d.Primary.End != 4 {
		t.Fatalf("diagnostic span = %v, want 0-4", d.Primary)
	}
}

func TestTokenizeTrailingRunFlushed(t *testing.T) {
	toks := lexer.Tokenize("1+2", nil)
	want := []token.Kind{token.Number, token.Plus, token.Number}
	if !equalKinds(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
}

func TestTokenizeEmptyLine(t *testing.T) {
	if toks := lexer.Tokenize("", nil); len(toks) != 0 {
		t.Fatalf("tokens = %v, want none", toks)
	}
	if toks := lexer.Tokenize("   ", nil); len(toks) != 0 {
		t.Fatalf("tokens = %v, want none", toks)
	}
}

func TestTokenizeNilReporter(t *testing.T) {
	// A nil reporter drops diagnostics but must not panic.
	toks := lexer.Tokenize("0xzz", nil)
	if len(toks) != 0 {
		t.Fatalf("tokens = %v, want none", toks)
	}
}
