package history_test

import (
	"testing"
	"time"

	"radix/internal/history"
)

func TestAppendAndList(t *testing.T) {
	s, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	entries := []history.Entry{
		{Expr: "1 + 2", Result: 3, When: time.Now()},
		{Expr: "5 / 0", Err: "Division by zero", When: time.Now()},
	}
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	got, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Expr != "1 + 2" || got[0].Result != 3 {
		t.Fatalf("first entry = %+v", got[0])
	}
	if got[1].Err != "Division by zero" {
		t.Fatalf("second entry = %+v", got[1])
	}
}

func TestListEmpty(t *testing.T) {
	s, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh store must be empty, got %v", got)
	}
}

func TestClear(t *testing.T) {
	s, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Append(history.Entry{Expr: "42", Result: 42}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("cleared store must be empty, got %v", got)
	}
	// Clearing an already-empty store is not an error.
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestNilStore(t *testing.T) {
	var s *history.Store
	if err := s.Append(history.Entry{}); err != nil {
		t.Fatalf("nil append: %v", err)
	}
	if _, err := s.List(); err != nil {
		t.Fatalf("nil list: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("nil clear: %v", err)
	}
}
