package snapshot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenhr/zenhr-backend-go/internal/domain/employee"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

// fakeBackend counts saves and can be told to fail.
type fakeBackend struct {
	mu    sync.Mutex
	saves int
	fail  bool
	last  []byte
}

func (f *fakeBackend) Load(ctx context.Context) ([]byte, error) {
	return nil, ErrNoSnapshot
}

func (f *fakeBackend) Save(ctx context.Context, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("backend unavailable")
	}
	f.saves++
	f.last = append([]byte(nil), data...)
	return nil
}

func (f *fakeBackend) Mode() string { return "fake" }

func (f *fakeBackend) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

func (f *fakeBackend) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func mutate(store *state.Store) {
	store.Write(func(doc *state.Document) {
		doc.Employees = append(doc.Employees, employee.Employee{ID: "x"})
	})
}

func TestSaverDebouncesBursts(t *testing.T) {
	store := state.NewStore()
	backend := &fakeBackend{}
	saver := NewSaver(store, backend, nil, discardLogger(), 30*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() { defer close(done); saver.Run(ctx) }()

	// A burst of writes inside the window collapses into one save.
	for i := 0; i < 5; i++ {
		mutate(store)
		time.Sleep(2 * time.Millisecond)
	}

	waitFor(t, time.Second, func() bool { return backend.saveCount() == 1 })
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, backend.saveCount(), "burst coalesced into a single save")

	status := saver.Status()
	assert.False(t, status.Dirty)
	assert.Equal(t, uint64(5), status.SavedRevision)
	require.NotNil(t, status.LastSyncedAt)

	cancel()
	<-done
}

func TestSaverRetriesAfterFailure(t *testing.T) {
	store := state.NewStore()
	backend := &fakeBackend{}
	backend.setFail(true)
	saver := NewSaver(store, backend, nil, discardLogger(), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() { defer close(done); saver.Run(ctx) }()

	mutate(store)

	waitFor(t, time.Second, func() bool { return saver.Status().LastError != "" })
	assert.True(t, saver.Status().Dirty, "failed save keeps the dirty flag")

	// Heal the backend; the retry timer flushes without a new mutation.
	backend.setFail(false)
	waitFor(t, time.Second, func() bool { return backend.saveCount() == 1 })

	waitFor(t, time.Second, func() bool { return !saver.Status().Dirty })
	assert.Empty(t, saver.Status().LastError)

	cancel()
	<-done
}

func TestSaverFinalFlushOnShutdown(t *testing.T) {
	store := state.NewStore()
	backend := &fakeBackend{}
	// Long debounce so the regular flush cannot fire first.
	saver := NewSaver(store, backend, nil, discardLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { defer close(done); saver.Run(ctx) }()

	mutate(store)
	waitFor(t, time.Second, func() bool { return saver.Status().Dirty })

	cancel()
	<-done

	assert.Equal(t, 1, backend.saveCount(), "shutdown flushes pending changes")
}

func TestSaverDegradedClearsOnSave(t *testing.T) {
	store := state.NewStore()
	backend := &fakeBackend{}
	saver := NewSaver(store, backend, nil, discardLogger(), 10*time.Millisecond)
	saver.MarkDegraded("load failed")

	assert.True(t, saver.Status().Degraded)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() { defer close(done); saver.Run(ctx) }()

	mutate(store)
	waitFor(t, time.Second, func() bool { return !saver.Status().Degraded })
	assert.Empty(t, saver.Status().LastError)

	cancel()
	<-done
}
