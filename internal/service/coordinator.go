// Package service wires the session components into one coordinator and
// exposes it as a Connect RPC service.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/meetnmeal/internal/auth"
	"github.com/mmynk/meetnmeal/internal/compute"
	"github.com/mmynk/meetnmeal/internal/expiry"
	"github.com/mmynk/meetnmeal/internal/fanout"
	"github.com/mmynk/meetnmeal/internal/metrics"
	"github.com/mmynk/meetnmeal/internal/models"
	"github.com/mmynk/meetnmeal/internal/session"
	"github.com/mmynk/meetnmeal/internal/storage"
)

const archiveTimeout = 5 * time.Second

// Options configures a Coordinator. Engine is required; everything else is
// optional.
type Options struct {
	Engine         compute.Engine
	ComputeTimeout time.Duration
	Expiry         expiry.Config

	// QueueSize bounds each member's pending push events.
	QueueSize int

	// Archive receives a record of every destroyed session.
	Archive storage.Archive

	// Tokens issues member tokens on join. Nil disables tokens.
	Tokens *auth.TokenManager

	Metrics *metrics.Metrics

	// StoreOptions are passed to the session store.
	StoreOptions []session.Option
}

// Coordinator is one running instance of the session service. It owns the
// session store, the fan-out hub, the compute orchestrator and the expiry
// scheduler; their lifetime is the coordinator's.
type Coordinator struct {
	store        *session.Store
	hub          *fanout.Hub
	orchestrator *compute.Orchestrator
	scheduler    *expiry.Scheduler
	archive      storage.Archive
	tokens       *auth.TokenManager
	metrics      *metrics.Metrics
}

// JoinResult is returned by Join.
type JoinResult struct {
	UserID string
	// Token is empty when tokens are disabled.
	Token string
}

// NewCoordinator builds the components and hooks them together.
func NewCoordinator(opts Options) *Coordinator {
	var observer fanout.Observer
	if opts.Metrics != nil {
		observer = opts.Metrics
	}
	hub := fanout.NewHub(opts.QueueSize, observer)
	store := session.NewStore(hub, opts.StoreOptions...)

	c := &Coordinator{
		store:        store,
		hub:          hub,
		orchestrator: compute.NewOrchestrator(store, opts.Engine, opts.ComputeTimeout, opts.Metrics),
		scheduler:    expiry.New(store, opts.Expiry),
		archive:      opts.Archive,
		tokens:       opts.Tokens,
		metrics:      opts.Metrics,
	}
	store.OnExpire(c.sessionExpired)
	return c
}

// Run reaps idle sessions until ctx is cancelled.
func (c *Coordinator) Run(ctx context.Context) error {
	return c.scheduler.Run(ctx)
}

// Create starts a new session and returns its join code.
func (c *Coordinator) Create() (string, error) {
	id, err := c.store.Create()
	if err != nil {
		return "", err
	}
	c.metrics.SessionCreated()
	slog.Info("Session created", "group_id", id)
	return id, nil
}

// Join adds a member to an OPEN session.
func (c *Coordinator) Join(id string) (JoinResult, error) {
	userID, err := c.store.Join(id)
	if err != nil {
		return JoinResult{}, err
	}
	c.metrics.MemberJoined()
	slog.Info("Member joined", "group_id", id, "user_id", userID)

	res := JoinResult{UserID: userID}
	if c.tokens != nil {
		res.Token, err = c.tokens.Generate(id, userID)
		if err != nil {
			return JoinResult{}, fmt.Errorf("failed to issue member token: %w", err)
		}
	}
	return res, nil
}

// Submit validates and records a member's preferences.
func (c *Coordinator) Submit(id, userID string, prefs models.PreferenceSet) error {
	normalized, err := prefs.Normalize()
	if err != nil {
		return err
	}
	if err := c.store.Submit(id, userID, normalized); err != nil {
		return err
	}
	slog.Info("Preferences submitted", "group_id", id, "user_id", userID)
	return nil
}

// Status returns the joined and ready counts and the state of a session.
func (c *Coordinator) Status(id string) (session.Status, error) {
	return c.store.Status(id)
}

// Compute runs the recommendation engine for a session.
func (c *Coordinator) Compute(ctx context.Context, id string) ([]models.Recommendation, error) {
	return c.orchestrator.Compute(ctx, id)
}

// Result returns the stored ranked list of a session.
func (c *Coordinator) Result(id string) ([]models.Recommendation, error) {
	return c.orchestrator.Result(id)
}

// Close winds a session down after grace seconds.
func (c *Coordinator) Close(id string, grace int) error {
	return c.scheduler.Close(id, grace)
}

// Subscribe opens the push channel of a member. A newer subscription for the
// same member replaces the older one.
//
// The subscription is registered while the session is held, so a session
// destroyed concurrently either rejects it or terminates it.
func (c *Coordinator) Subscribe(id, userID string) (*fanout.Subscription, error) {
	var sub *fanout.Subscription
	err := c.store.Mutate(id, func(tx *session.Txn) error {
		if _, ok := tx.Session.Members[userID]; !ok {
			return fmt.Errorf("%w: member %q in session %q", models.ErrNotFound, userID, id)
		}
		var err error
		sub, err = c.hub.Subscribe(id, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Record returns the archived summary of a finished session.
func (c *Coordinator) Record(ctx context.Context, id string) (*models.SessionRecord, error) {
	if c.archive == nil {
		return nil, fmt.Errorf("%w: session archive is disabled", models.ErrNotFound)
	}
	return c.archive.GetSessionRecord(ctx, id)
}

// Sessions returns the number of live sessions.
func (c *Coordinator) Sessions() int {
	return c.store.Len()
}

// Shutdown stops the countdowns, ends every live session with
// TerminationShutdown and closes the hub. The coordinator is unusable
// afterwards.
func (c *Coordinator) Shutdown() {
	c.scheduler.Stop()

	ended := 0
	for _, id := range c.store.IDs() {
		err := c.store.Mutate(id, func(tx *session.Txn) error {
			tx.Expire(models.TerminationShutdown)
			return nil
		})
		switch {
		case err == nil:
			ended++
		case errors.Is(err, models.ErrNotFound):
		default:
			slog.Error("Failed to end session on shutdown", "group_id", id, "error", err)
		}
	}

	c.hub.Close()
	slog.Info("Session service stopped", "sessions_ended", ended)
}

// sessionExpired runs after a session is destroyed.
func (c *Coordinator) sessionExpired(sess *models.GroupSession, t models.Termination) {
	c.metrics.SessionExpired(t.Reason)
	joined, ready := session.Counts(sess)
	slog.Info("Session ended",
		"group_id", sess.ID,
		"reason", t.Reason,
		"members", joined,
		"ready", ready,
	)

	if c.archive == nil {
		return
	}
	rec := &models.SessionRecord{
		ID:          sess.ID,
		CreatedAt:   sess.CreatedAt.Unix(),
		ClosedAt:    time.Now().Unix(),
		MemberCount: joined,
		ReadyCount:  ready,
		Reason:      t.Reason,
	}
	for _, r := range sess.Result {
		rec.TopPicks = append(rec.TopPicks, r.Name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()
	if err := c.archive.ArchiveSession(ctx, rec); err != nil {
		slog.Error("Failed to archive session", "group_id", sess.ID, "error", err)
	}
}
