package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestSnapshot_NilIsEmpty(t *testing.T) {
	var s *Snapshot
	if s.Len() != 0 {
		t.Fatalf("expected 0, got %d", s.Len())
	}
	if s.Items() != nil {
		t.Fatalf("expected nil items")
	}
	if s.Contains(uuid.New()) {
		t.Fatalf("expected nil snapshot to contain nothing")
	}
}

func TestNewSnapshot_CopiesInput(t *testing.T) {
	id := uuid.New()
	in := []Item{{ID: id, Text: "buy milk"}}
	s := NewSnapshot(in)
	in[0].Text = "changed"

	got, ok := s.At(0)
	if !ok {
		t.Fatalf("expected item at 0")
	}
	if got.Text != "buy milk" {
		t.Fatalf("expected snapshot to be isolated from caller slice, got %q", got.Text)
	}

	out := s.Items()
	out[0].Completed = true
	again, _ := s.At(0)
	if again.Completed {
		t.Fatalf("expected Items to return a copy")
	}
}

func TestSnapshot_Index(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	s := NewSnapshot([]Item{{ID: a, Text: "a"}, {ID: b, Text: "b"}})
	if s.Index(b) != 1 {
		t.Fatalf("expected index 1, got %d", s.Index(b))
	}
	if s.Index(uuid.New()) != -1 {
		t.Fatalf("expected -1 for unknown id")
	}
	if _, ok := s.At(2); ok {
		t.Fatalf("expected out of range")
	}
}

func TestThemeFor(t *testing.T) {
	if ThemeFor(true) != ThemeDark || ThemeFor(false) != ThemeLight {
		t.Fatalf("unexpected theme mapping")
	}
}
