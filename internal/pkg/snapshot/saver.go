package snapshot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/zenhr/zenhr-backend-go/internal/pkg/sse"
	"github.com/zenhr/zenhr-backend-go/internal/state"
)

// Status is the observable save-queue state surfaced to the console banner.
type Status struct {
	Mode          string     `json:"mode"`
	Degraded      bool       `json:"degraded"`
	Dirty         bool       `json:"dirty"`
	Syncing       bool       `json:"syncing"`
	Revision      uint64     `json:"revision"`
	SavedRevision uint64     `json:"savedRevision"`
	LastSyncedAt  *time.Time `json:"lastSyncedAt,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
}

// Saver is the save queue between the state store and a backend. Mutations
// mark it dirty; a debounce window coalesces bursts into one full-document
// write. A failed write is retried with exponential backoff, and any new
// mutation restarts the debounce window (so the next change also retries,
// as the console behaved).
type Saver struct {
	store      *state.Store
	backend    Backend
	hub        *sse.Hub
	logger     *slog.Logger
	debounce   time.Duration
	maxBackoff time.Duration

	changed chan struct{}

	mu     sync.Mutex
	status Status
}

func NewSaver(store *state.Store, backend Backend, hub *sse.Hub, logger *slog.Logger, debounce time.Duration) *Saver {
	s := &Saver{
		store:      store,
		backend:    backend,
		hub:        hub,
		logger:     logger,
		debounce:   debounce,
		maxBackoff: time.Minute,
		changed:    make(chan struct{}, 1),
		status:     Status{Mode: backend.Mode()},
	}
	store.OnChange(s.noteChange)
	return s
}

// noteChange runs on every store mutation. The buffered channel coalesces
// bursts; a full channel means a wakeup is already pending.
func (s *Saver) noteChange(revision uint64) {
	s.setStatus(func(st *Status) {
		st.Dirty = true
		st.Revision = revision
	})
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// MarkDegraded records a startup load failure. The status stays degraded
// until a save succeeds.
func (s *Saver) MarkDegraded(reason string) {
	s.setStatus(func(st *Status) {
		st.Degraded = true
		st.LastError = reason
	})
}

func (s *Saver) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Run drives the save loop until ctx is cancelled. On shutdown a final flush
// is attempted so a clean stop does not drop the tail of the document.
func (s *Saver) Run(ctx context.Context) {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		backoff time.Duration
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			if s.Status().Dirty {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := s.flush(flushCtx); err != nil {
					s.logger.Error("final snapshot flush failed", "error", err)
				}
				cancel()
			}
			return

		case <-s.changed:
			// Every change restarts the window, coalescing bursts into one
			// write and doubling as the retry trigger after a failure.
			stopTimer()
			backoff = 0
			timer = time.NewTimer(s.debounce)
			timerC = timer.C

		case <-timerC:
			timer = nil
			timerC = nil
			if err := s.flush(ctx); err != nil {
				if backoff == 0 {
					backoff = s.debounce
				} else {
					backoff *= 2
				}
				if backoff > s.maxBackoff {
					backoff = s.maxBackoff
				}
				s.logger.Warn("snapshot save failed, retrying",
					"error", err, "backoff", backoff.String())
				timer = time.NewTimer(backoff)
				timerC = timer.C
			} else {
				backoff = 0
			}
		}
	}
}

func (s *Saver) flush(ctx context.Context) error {
	s.setStatus(func(st *Status) { st.Syncing = true })

	data, revision, err := s.store.MarshalSnapshot()
	if err == nil {
		err = s.backend.Save(ctx, data)
	}

	if err != nil {
		s.setStatus(func(st *Status) {
			st.Syncing = false
			st.LastError = err.Error()
		})
		return err
	}

	now := time.Now()
	s.setStatus(func(st *Status) {
		st.Syncing = false
		st.Degraded = false
		st.LastError = ""
		st.SavedRevision = revision
		st.Dirty = st.Revision > revision
		st.LastSyncedAt = &now
	})
	return nil
}

func (s *Saver) setStatus(mutate func(st *Status)) {
	s.mu.Lock()
	mutate(&s.status)
	status := s.status
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Publish(sse.Event{Event: "sync", Data: status})
	}
}
