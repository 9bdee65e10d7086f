package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/meetnmeal/internal/expiry"
	"github.com/mmynk/meetnmeal/internal/metrics"
	"github.com/mmynk/meetnmeal/internal/models"
)

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// drain collects events until the subscription ends or the deadline passes.
func drain(t *testing.T, events <-chan models.Event) []models.Event {
	t.Helper()
	var out []models.Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				return out
			}
			out = append(out, e)
		case <-timeout:
			t.Fatalf("subscription did not end, got %v", out)
			return nil
		}
	}
}

func TestCoordinator_SubscribeReceivesLifecycle(t *testing.T) {
	m := metrics.New()
	coord := NewCoordinator(Options{
		Engine:  stubEngine("Truffles"),
		Metrics: m,
		Expiry:  expiry.Config{Tick: 5 * time.Millisecond},
	})
	defer coord.Shutdown()

	id, _ := coord.Create()
	alice, _ := coord.Join(id)

	sub, err := coord.Subscribe(id, alice.UserID)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	bob, _ := coord.Join(id)
	if err := coord.Submit(id, bob.UserID, models.PreferenceSet{Cuisines: []string{"Thai"}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := coord.Compute(context.Background(), id); err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if err := coord.Close(id, 2); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	events := drain(t, sub.Events())
	want := []models.Event{
		models.UserJoined{JoinedCount: 2, ReadyCount: 0},
		models.UserReady{ReadyCount: 1},
		models.SessionClosing{TimeLeft: 2},
		models.SessionClosing{TimeLeft: 1},
		models.SessionClosing{TimeLeft: 0},
		models.SessionExpired{Reason: models.TerminationExpired.Reason},
	}
	if len(events) != len(want) {
		t.Fatalf("events: got %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got %#v, want %#v", i, events[i], want[i])
		}
	}
	if sub.Termination() != models.TerminationExpired {
		t.Errorf("termination: got %+v", sub.Termination())
	}

	// Expire hooks run after the member channels are closed.
	eventually(t, func() bool {
		return testutil.ToFloat64(m.SessionsExpired.WithLabelValues(models.TerminationExpired.Reason)) == 1
	})
	if got := testutil.ToFloat64(m.SessionsActive); got != 0 {
		t.Errorf("active sessions: got %v, want 0", got)
	}
}

func TestCoordinator_SubscribeRequiresMembership(t *testing.T) {
	coord := NewCoordinator(Options{Engine: stubEngine()})
	defer coord.Shutdown()

	id, _ := coord.Create()
	if _, err := coord.Subscribe(id, "ghost"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown member: expected ErrNotFound, got %v", err)
	}
	if _, err := coord.Subscribe("NOPE00", "ghost"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown session: expected ErrNotFound, got %v", err)
	}
}

func TestCoordinator_SubmitNormalizesPreferences(t *testing.T) {
	coord := NewCoordinator(Options{Engine: stubEngine()})
	defer coord.Shutdown()

	id, _ := coord.Create()
	m, _ := coord.Join(id)
	err := coord.Submit(id, m.UserID, models.PreferenceSet{Cuisines: []string{" Thai ", "THAI"}, Location: models.Location{Area: "HSR"}})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	sess, err := coord.store.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got := sess.Members[m.UserID].Preferences
	if len(got.Cuisines) != 1 || got.Cuisines[0] != "thai" || got.Location.Area != "hsr" {
		t.Errorf("stored preferences: got %+v", got)
	}

	if err := coord.Submit(id, m.UserID, models.PreferenceSet{Budget: -1}); !errors.Is(err, models.ErrInvalidPreferences) {
		t.Errorf("invalid preferences: expected ErrInvalidPreferences, got %v", err)
	}
}

func TestCoordinator_Shutdown(t *testing.T) {
	coord := NewCoordinator(Options{Engine: stubEngine()})

	id, _ := coord.Create()
	member, _ := coord.Join(id)
	sub, err := coord.Subscribe(id, member.UserID)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	coord.Shutdown()

	events := drain(t, sub.Events())
	if len(events) != 1 || events[0] != (models.SessionExpired{Reason: models.TerminationShutdown.Reason}) {
		t.Errorf("events: got %v", events)
	}
	if sub.Termination() != models.TerminationShutdown {
		t.Errorf("termination: got %+v", sub.Termination())
	}
	if coord.Sessions() != 0 {
		t.Errorf("sessions after shutdown: %d", coord.Sessions())
	}
	if _, err := coord.Subscribe(id, member.UserID); err == nil {
		t.Error("Subscribe after shutdown: expected error")
	}
}

func TestCoordinator_JoinWithoutTokens(t *testing.T) {
	coord := NewCoordinator(Options{Engine: stubEngine()})
	defer coord.Shutdown()

	id, _ := coord.Create()
	res, err := coord.Join(id)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if res.UserID == "" || res.Token != "" {
		t.Errorf("join result: got %+v", res)
	}
	if _, err := coord.Record(context.Background(), id); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Record without archive: expected ErrNotFound, got %v", err)
	}
}
