package ident

import (
	"testing"
)

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := New()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id after %d calls: %s", i, id)
		}
		seen[id] = true
	}
}

func TestNewOpaqueShape(t *testing.T) {
	id := New()
	if len(id) != 36 {
		t.Fatalf("expected 36-char uuid string, got %d chars: %q", len(id), id)
	}
}
