package testutil

import (
	"fmt"
	"testing"
	"time"

	"contactflow/internal/store"
)

// FixedTime is the deterministic clock value used by test stores.
var FixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// NewMemoryStore creates a memory-backed Store with a fixed clock and
// sequential ids ("req-1", "req-2", ...).
func NewMemoryStore(t *testing.T) *store.Store {
	t.Helper()

	s := store.New(store.NewMemoryBackend())
	s.Clock = func() time.Time { return FixedTime }

	counter := 0
	s.NewID = func(collection string) string {
		counter++
		return fmt.Sprintf("%s-%d", store.IDPrefix(collection), counter)
	}
	return s
}

// NewSQLiteStore creates a Store on an in-memory SQLite database with all
// migrations applied. It automatically closes the backend when the test
// completes.
func NewSQLiteStore(t *testing.T) *store.Store {
	t.Helper()

	backend, err := store.NewSQLiteBackend(":memory:")
	if err != nil {
		t.Fatalf("creating test backend: %v", err)
	}

	t.Cleanup(func() {
		if err := backend.Close(); err != nil {
			t.Errorf("closing test backend: %v", err)
		}
	})

	return store.New(backend)
}
