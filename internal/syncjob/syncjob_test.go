package syncjob

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"bankmock/internal/ledger"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestStartCompletesAfterDelay(t *testing.T) {
	store := ledger.NewStore()
	c := NewController(store, 50*time.Millisecond, zap.NewNop())

	if c.Finished() {
		t.Fatal("finished before any job started")
	}

	c.Start()
	if c.Finished() {
		t.Fatal("finished immediately after start")
	}

	waitFor(t, time.Second, c.Finished)
	if got := len(store.Accounts()); got != 3 {
		t.Fatalf("accounts=%d want 3", got)
	}
}

func TestFinishedImpliesAccountVisible(t *testing.T) {
	store := ledger.NewStore()
	c := NewController(store, 20*time.Millisecond, zap.NewNop())

	c.Start()
	waitFor(t, time.Second, c.Finished)

	// the append happens before the flag flips
	if got := len(store.Accounts()); got != 3 {
		t.Fatalf("accounts=%d want 3", got)
	}
}

func TestRestartSupersedesPendingJob(t *testing.T) {
	store := ledger.NewStore()
	c := NewController(store, 60*time.Millisecond, zap.NewNop())

	c.Start()
	c.Start()
	c.Start()

	waitFor(t, time.Second, c.Finished)
	// settle to catch a stray duplicate completion
	time.Sleep(150 * time.Millisecond)

	if got := len(store.Accounts()); got != 3 {
		t.Fatalf("accounts=%d want 3 (single completion)", got)
	}
}

func TestStartResetsFlag(t *testing.T) {
	store := ledger.NewStore()
	c := NewController(store, 20*time.Millisecond, zap.NewNop())

	c.Start()
	waitFor(t, time.Second, c.Finished)

	c.Start()
	if c.Finished() {
		t.Fatal("flag not reset by restart")
	}
	waitFor(t, time.Second, c.Finished)
	if got := len(store.Accounts()); got != 4 {
		t.Fatalf("accounts=%d want 4", got)
	}
}
