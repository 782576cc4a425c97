// Package kvtest exercises a kv.Store implementation with a minimal
// compliance suite. Drivers call Run from their own tests with a clean,
// isolated store.
package kvtest

import (
	"context"
	"errors"
	"testing"

	"github.com/schedax/schedax/internal/kv"
)

// Run exercises get/set/remove semantics against a fresh store.
func Run(t *testing.T, makeStore func(t *testing.T) kv.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Missing key
	if _, err := s.Get(ctx, "absent"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("Get absent: expected ErrKeyNotFound, got %v", err)
	}

	// Set then get
	if err := s.Set(ctx, "k1", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "k1")
	if err != nil || string(got) != `{"a":1}` {
		t.Fatalf("Get: got=%q err=%v", got, err)
	}

	// Whole-value overwrite
	if err := s.Set(ctx, "k1", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got, _ := s.Get(ctx, "k1"); string(got) != `{"a":2}` {
		t.Fatalf("overwrite not applied: %q", got)
	}

	// Remove
	if err := s.Remove(ctx, "k1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Get(ctx, "k1"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("Get after remove: expected ErrKeyNotFound, got %v", err)
	}

	// Remove of a missing key is a no-op
	if err := s.Remove(ctx, "k1"); err != nil {
		t.Fatalf("Remove missing: %v", err)
	}

	// RemoveMany
	for _, k := range []string{"a", "b", "c"} {
		if err := s.Set(ctx, k, []byte(`1`)); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}
	if err := s.RemoveMany(ctx, []string{"a", "c"}); err != nil {
		t.Fatalf("RemoveMany: %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Fatalf("a should be gone: %v", err)
	}
	if _, err := s.Get(ctx, "b"); err != nil {
		t.Fatalf("b should survive: %v", err)
	}
	if err := s.RemoveMany(ctx, nil); err != nil {
		t.Fatalf("RemoveMany empty: %v", err)
	}
}
