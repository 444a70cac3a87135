package source_test

import (
	"testing"

	"radix/internal/source"
)

func TestSpanEmptyAndLen(t *testing.T) {
	sp := source.Span{Start: 3, End: 3}
	if !sp.Empty() {
		t.Fatalf("span %v should be empty", sp)
	}
	sp.End = 7
	if sp.Empty() {
		t.Fatalf("span %v must NOT be empty", sp)
	}
	if got := sp.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{Start: 2, End: 5}
	b := source.Span{Start: 4, End: 9}
	got := a.Cover(b)
	want := source.Span{Start: 2, End: 9}
	if got != want {
		t.Fatalf("Cover = %v, want %v", got, want)
	}
}

func TestSpanString(t *testing.T) {
	sp := source.Span{Start: 1, End: 4}
	if got := sp.String(); got != "1-4" {
		t.Fatalf("String() = %q, want %q", got, "1-4")
	}
}
