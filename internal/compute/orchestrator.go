// Package compute runs the recommendation engine for a session, at most once
// successfully.
package compute

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mmynk/meetnmeal/internal/metrics"
	"github.com/mmynk/meetnmeal/internal/models"
	"github.com/mmynk/meetnmeal/internal/session"
)

const tracerName = "github.com/mmynk/meetnmeal/internal/compute"

// DefaultTimeout bounds a single engine call.
const DefaultTimeout = 30 * time.Second

// Engine ranks restaurants for a group. prefs holds one entry per ready member,
// in join order. An empty result means nothing matched.
type Engine interface {
	Recommend(ctx context.Context, prefs []models.PreferenceSet) ([]models.Recommendation, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, prefs []models.PreferenceSet) ([]models.Recommendation, error)

// Recommend calls f.
func (f EngineFunc) Recommend(ctx context.Context, prefs []models.PreferenceSet) ([]models.Recommendation, error) {
	return f(ctx, prefs)
}

// Orchestrator moves sessions through COMPUTING.
type Orchestrator struct {
	store   *session.Store
	engine  Engine
	timeout time.Duration
	metrics *metrics.Metrics
}

// NewOrchestrator creates an orchestrator. timeout <= 0 selects
// DefaultTimeout; m may be nil.
func NewOrchestrator(store *session.Store, engine Engine, timeout time.Duration, m *metrics.Metrics) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Orchestrator{store: store, engine: engine, timeout: timeout, metrics: m}
}

// Compute runs the engine over the ready members' preferences and stores the
// ranked list.
//
// The session must be OPEN with at least one ready member. While the engine
// runs the session is COMPUTING and every other mutation fails fast. When the
// session already has a result, Compute returns ErrWrongState together with
// the stored list. An engine failure returns the session to OPEN and is
// reported as ErrComputeFailed, so the caller may retry.
func (o *Orchestrator) Compute(ctx context.Context, id string) ([]models.Recommendation, error) {
	var (
		prefs  []models.PreferenceSet
		stored []models.Recommendation
	)
	err := o.store.Mutate(id, func(tx *session.Txn) error {
		sess := tx.Session
		if sess.State.HasResult() {
			stored = append([]models.Recommendation(nil), sess.Result...)
			return fmt.Errorf("%w: session %q already has a result", models.ErrWrongState, id)
		}
		if err := session.CanCompute(sess); err != nil {
			return err
		}
		prefs = session.ReadyPreferences(sess)
		sess.State = models.StateComputing
		return nil
	})
	if err != nil {
		return stored, err
	}

	slog.Info("Compute started", "group_id", id, "ready_members", len(prefs))

	// Member disconnects must not cancel a session-owned compute.
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeout)
	defer cancel()
	runCtx, span := otel.Tracer(tracerName).Start(runCtx, "compute.Recommend")
	span.SetAttributes(
		attribute.String("group_id", id),
		attribute.Int("ready_members", len(prefs)),
	)
	defer span.End()

	start := time.Now()
	result, engineErr := o.engine.Recommend(runCtx, prefs)
	o.metrics.ComputeFinished(time.Since(start), engineErr)

	if engineErr != nil {
		span.RecordError(engineErr)
		span.SetStatus(codes.Error, engineErr.Error())
		slog.Error("Compute failed", "group_id", id, "error", engineErr)

		revertErr := o.store.Mutate(id, func(tx *session.Txn) error {
			if tx.Session.State == models.StateComputing {
				tx.Session.State = models.StateOpen
			}
			return nil
		})
		if revertErr != nil && !errors.Is(revertErr, models.ErrNotFound) {
			slog.Error("Failed to reopen session after compute failure", "group_id", id, "error", revertErr)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrComputeFailed, engineErr)
	}

	if result == nil {
		result = []models.Recommendation{}
	}
	err = o.store.Mutate(id, func(tx *session.Txn) error {
		if tx.Session.State != models.StateComputing {
			return fmt.Errorf("%w: session %q left COMPUTING during compute", models.ErrWrongState, id)
		}
		tx.Session.Result = result
		tx.Session.State = models.StateResultsReady
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("results", len(result)))
	slog.Info("Compute finished", "group_id", id, "results", len(result))
	return append([]models.Recommendation(nil), result...), nil
}

// Result returns the stored ranked list. It fails with ErrNotReady until the
// session has a result.
func (o *Orchestrator) Result(id string) ([]models.Recommendation, error) {
	sess, err := o.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !sess.State.HasResult() {
		return nil, fmt.Errorf("%w: session %q is %s", models.ErrNotReady, id, sess.State)
	}
	return sess.Result, nil
}
