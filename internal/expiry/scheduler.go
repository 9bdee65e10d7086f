// Package expiry ends group sessions: explicit close, the closing countdown,
// and reaping of abandoned sessions.
package expiry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/meetnmeal/internal/models"
	"github.com/mmynk/meetnmeal/internal/session"
)

// Defaults
const (
	DefaultTick          = time.Second
	DefaultSessionTTL    = 10 * time.Minute
	DefaultSweepInterval = 30 * time.Second
	DefaultIdleGrace     = 10
	DefaultMaxGrace      = 300
)

var (
	// ErrInvalidGrace is returned for a grace period outside [0, MaxGrace].
	ErrInvalidGrace = errors.New("invalid grace period")
	// ErrStopped is returned once the scheduler has been stopped.
	ErrStopped = errors.New("expiry scheduler stopped")
)

var errSkip = errors.New("skip")

// Config tunes the scheduler. Zero values select the defaults.
type Config struct {
	// Tick is the countdown step; one tick is one second of time_left.
	Tick time.Duration

	// SessionTTL is how long an OPEN or RESULTS_READY session may go
	// without a mutation before it is wound down.
	SessionTTL time.Duration

	// SweepInterval is how often idle sessions are looked for.
	SweepInterval time.Duration

	// IdleGrace is the countdown, in seconds, given to idle sessions.
	IdleGrace int

	// MaxGrace caps the grace a caller may request on Close.
	MaxGrace int

	// Now is the time source for idle detection. Defaults to time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Tick <= 0 {
		c.Tick = DefaultTick
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = DefaultSweepInterval
	}
	if c.IdleGrace < 0 {
		c.IdleGrace = 0
	}
	if c.MaxGrace <= 0 {
		c.MaxGrace = DefaultMaxGrace
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Scheduler owns one countdown goroutine per CLOSING session.
type Scheduler struct {
	store *session.Store
	cfg   Config

	mu         sync.Mutex
	countdowns map[string]context.CancelFunc
	stopped    bool
	wg         sync.WaitGroup
}

// New creates a scheduler for store and hooks it to session destruction so
// countdowns of destroyed sessions are cancelled.
func New(store *session.Store, cfg Config) *Scheduler {
	s := &Scheduler{
		store:      store,
		cfg:        cfg.withDefaults(),
		countdowns: make(map[string]context.CancelFunc),
	}
	store.OnExpire(func(sess *models.GroupSession, _ models.Termination) {
		s.cancel(sess.ID)
	})
	return s
}

// Close winds a session down once it has a result.
//
// With grace 0 the session moves to CLOSING, members get
// SESSION_CLOSING{time_left:0} then SESSION_EXPIRED, and the session is
// destroyed before Close returns. With grace N the countdown broadcasts
// time_left once per tick and expires the session when it reaches 0.
func (s *Scheduler) Close(id string, grace int) error {
	if grace < 0 || grace > s.cfg.MaxGrace {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidGrace, grace, s.cfg.MaxGrace)
	}
	return s.store.Mutate(id, func(tx *session.Txn) error {
		if tx.Session.State != models.StateResultsReady {
			return fmt.Errorf("%w: cannot close a %s session", models.ErrWrongState, tx.Session.State)
		}
		return s.beginClosing(tx, grace, models.TerminationClosed)
	})
}

// Run reaps idle sessions until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Info("Winding down idle sessions", "count", n)
			}
		}
	}
}

// Sweep starts the closing countdown for every session idle longer than the
// session TTL and returns how many it started. Sessions in COMPUTING are left
// alone until the engine returns.
func (s *Scheduler) Sweep() int {
	cutoff := s.cfg.Now().Add(-s.cfg.SessionTTL)
	count := 0
	for _, id := range s.store.Idle(cutoff) {
		err := s.store.Mutate(id, func(tx *session.Txn) error {
			sess := tx.Session
			if sess.State != models.StateOpen && sess.State != models.StateResultsReady {
				return errSkip
			}
			if !sess.LastActivity.Before(cutoff) {
				return errSkip
			}
			return s.beginClosing(tx, s.cfg.IdleGrace, models.TerminationExpired)
		})
		switch {
		case err == nil:
			count++
		case errors.Is(err, errSkip), errors.Is(err, models.ErrNotFound):
		default:
			slog.Error("Failed to wind down idle session", "group_id", id, "error", err)
		}
	}
	return count
}

// Stop cancels every running countdown and waits for them to exit. Sessions
// already CLOSING stay in the store.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for id, cancel := range s.countdowns {
		cancel()
		delete(s.countdowns, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// Countdowns returns the number of running countdowns.
func (s *Scheduler) Countdowns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.countdowns)
}

// beginClosing moves the session to CLOSING inside tx. A zero grace expires
// it in the same transaction with t; otherwise a countdown is started and
// ends it with TerminationExpired.
func (s *Scheduler) beginClosing(tx *session.Txn, grace int, t models.Termination) error {
	id := tx.Session.ID
	if grace > 0 {
		if err := s.start(id); err != nil {
			return err
		}
	}

	deadline := tx.Now().Add(time.Duration(grace) * time.Second)
	tx.Session.State = models.StateClosing
	tx.Session.ClosingDeadline = &deadline
	tx.Session.TimeLeft = grace
	tx.Emit(models.SessionClosing{TimeLeft: grace})
	slog.Info("Session closing", "group_id", id, "grace_seconds", grace)

	if grace == 0 {
		tx.Expire(t)
	}
	return nil
}

// start launches the countdown goroutine. It is called with the session held,
// so the goroutine's first step waits until the CLOSING transition commits.
func (s *Scheduler) start(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if _, running := s.countdowns[id]; running {
		return fmt.Errorf("%w: countdown already running for %q", models.ErrWrongState, id)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.countdowns[id] = cancel
	s.wg.Add(1)
	go s.countdown(ctx, id)
	return nil
}

func (s *Scheduler) countdown(ctx context.Context, id string) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		finished := false
		err := s.store.Mutate(id, func(tx *session.Txn) error {
			sess := tx.Session
			if sess.State != models.StateClosing {
				finished = true
				return nil
			}
			sess.TimeLeft--
			if sess.TimeLeft < 0 {
				sess.TimeLeft = 0
			}
			tx.Emit(models.SessionClosing{TimeLeft: sess.TimeLeft})
			if sess.TimeLeft == 0 {
				finished = true
				tx.Expire(models.TerminationExpired)
			}
			return nil
		})
		if err != nil || finished {
			s.cancel(id)
			return
		}
	}
}

func (s *Scheduler) cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.countdowns[id]; ok {
		cancel()
		delete(s.countdowns, id)
	}
}
