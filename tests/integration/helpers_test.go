// Package integration tests the ledger and SQLite store together through
// the full Attach → Load → mutate → Save → Detach lifecycle.
package integration

import (
	"testing"

	"github.com/oakmere/keepsake/internal/ledger"
	"github.com/oakmere/keepsake/internal/sqlite"
	"github.com/oakmere/keepsake/pkg/types"
)

const (
	testOwner   = types.Identity("owner-1")
	testBackend = types.Identity("backend-1")
)

// setupStore creates a store attached to an isolated temp directory. Each
// test case gets its own data directory.
func setupStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := sqlite.NewStore(nil)
	if err := s.Attach(types.Config{Backend: "sqlite", DataDir: dir}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { s.Detach() })
	return s, dir
}

// bootstrapLedger saves a new ledger with the test backend configured, the
// way keepsake init does on first run.
func bootstrapLedger(t *testing.T, s *sqlite.Store) *ledger.Ledger {
	t.Helper()
	l := ledger.New(testOwner)
	if err := l.SetBackend(testOwner, testBackend); err != nil {
		t.Fatalf("SetBackend: %v", err)
	}
	if err := s.Save(l.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return l
}

// loadLedger loads and restores the persisted ledger or fails the test.
func loadLedger(t *testing.T, s *sqlite.Store) *ledger.Ledger {
	t.Helper()
	st, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st == nil {
		t.Fatal("Load: no persisted state")
	}
	l, err := ledger.Restore(st)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	return l
}

// mustComplete mints a completion token or fails the test.
func mustComplete(t *testing.T, l *ledger.Ledger, user types.Identity, kind uint8, uri, name string) types.TokenID {
	t.Helper()
	token, err := l.CompleteAndRegister(testBackend, user, kind, uri, name)
	if err != nil {
		t.Fatalf("CompleteAndRegister(%s, %q): %v", user, name, err)
	}
	return token
}

// saveAndReload persists the ledger and restores a fresh copy from the
// store, simulating one CLI invocation ending and the next beginning.
func saveAndReload(t *testing.T, s *sqlite.Store, l *ledger.Ledger) *ledger.Ledger {
	t.Helper()
	if err := s.Save(l.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return loadLedger(t, s)
}
