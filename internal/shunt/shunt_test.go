package shunt_test

import (
	"testing"

	"radix/internal/lexer"
	"radix/internal/shunt"
	"radix/internal/token"
)

func postfixKinds(line string) []token.Kind {
	toks := shunt.ToPostfix(lexer.Tokenize(line, nil))
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

// Flat precedence: "3 + 4 * 2" becomes 3 4 + 2 *, not 3 4 2 * +.
// Left-associative by construction, no precedence tiers.
func TestToPostfixFlatPrecedence(t *testing.T) {
	got := postfixKinds("3 + 4 * 2")
	want := []token.Kind{token.Number, token.Number, token.Plus, token.Number, token.Star}
	if !equalKinds(got, want) {
		t.Fatalf("postfix = %v, want %v", got, want)
	}
}

func TestToPostfixParens(t *testing.T) {
	got := postfixKinds("(3 + 4) * 2")
	want := []token.Kind{token.Number, token.Number, token.Plus, token.Number, token.Star}
	if !equalKinds(got, want) {
		t.Fatalf("postfix = %v, want %v", got, want)
	}
	// The parens themselves are consumed, never emitted.
	for _, k := range got {
		if k == token.LParen || k == token.RParen {
			t.Fatalf("paren leaked into postfix: %v", got)
		}
	}
}

func TestToPostfixNestedParens(t *testing.T) {
	got := postfixKinds("((1 + 2) * (3 - 4))")
	want := []token.Kind{
		token.Number, token.Number, token.Plus,
		token.Number, token.Number, token.Minus,
		token.Star,
	}
	if !equalKinds(got, want) {
		t.Fatalf("postfix = %v, want %v", got, want)
	}
}

// A stray ')' empties the pop loop without effect and is dropped silently.
func TestToPostfixStrayRParenIgnored(t *testing.T) {
	got := postfixKinds("3 + 4)")
	want := []token.Kind{token.Number, token.Number, token.Plus}
	if !equalKinds(got, want) {
		t.Fatalf("postfix = %v, want %v", got, want)
	}
}

// An unmatched '(' is flushed into the output at end of input. The leak is
// intentional here; downstream evaluation fails on the paren token.
func TestToPostfixUnmatchedLParenLeaks(t *testing.T) {
	got := postfixKinds("(3 + 4")
	want := []token.Kind{token.Number, token.Number, token.Plus, token.LParen}
	if !equalKinds(got, want) {
		t.Fatalf("postfix = %v, want %v", got, want)
	}
}

func TestToPostfixEmpty(t *testing.T) {
	if got := shunt.ToPostfix(nil); len(got) != 0 {
		t.Fatalf("postfix of nil = %v, want empty", got)
	}
}
