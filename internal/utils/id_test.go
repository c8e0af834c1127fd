package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewIDUniqueAndOrdered(t *testing.T) {
	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 1000; i++ {
		id, err := NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s after %d calls", id, i)
		}
		seen[id] = struct{}{}
		if prev != "" && id <= prev {
			t.Fatalf("expected %s > %s", id, prev)
		}
		prev = id
	}
}

func TestNewIDIsVersion7(t *testing.T) {
	id, err := NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7, got %d", parsed.Version())
	}
}
