package fanout

import (
	"errors"
	"testing"

	"github.com/mmynk/meetnmeal/internal/models"
)

func drain(sub *Subscription) []models.Event {
	var out []models.Event
	for e := range sub.Events() {
		out = append(out, e)
	}
	return out
}

func TestHub_PublishReachesSessionMembersOnly(t *testing.T) {
	hub := NewHub(4, nil)

	a, _ := hub.Subscribe("S1", "alice")
	b, _ := hub.Subscribe("S1", "bob")
	other, _ := hub.Subscribe("S2", "carol")

	if n := hub.Publish("S1", models.UserJoined{JoinedCount: 2}); n != 2 {
		t.Errorf("delivered: expected 2, got %d", n)
	}

	hub.Terminate("S1", models.TerminationClosed)
	other.Close()

	for _, sub := range []*Subscription{a, b} {
		events := drain(sub)
		if len(events) != 1 || events[0].Type() != models.EventUserJoined {
			t.Errorf("%s: got %v", sub.UserID, events)
		}
		if sub.Termination() != models.TerminationClosed {
			t.Errorf("%s termination: got %+v", sub.UserID, sub.Termination())
		}
	}
	if events := drain(other); len(events) != 0 {
		t.Errorf("other session received %v", events)
	}
}

func TestHub_PreservesOrder(t *testing.T) {
	hub := NewHub(8, nil)
	sub, _ := hub.Subscribe("S1", "alice")

	for i := 5; i >= 0; i-- {
		hub.Publish("S1", models.SessionClosing{TimeLeft: i})
	}
	hub.Terminate("S1", models.TerminationExpired)

	events := drain(sub)
	if len(events) != 6 {
		t.Fatalf("events: expected 6, got %d", len(events))
	}
	for i, e := range events {
		if got := e.(models.SessionClosing).TimeLeft; got != 5-i {
			t.Errorf("event %d: time_left %d, want %d", i, got, 5-i)
		}
	}
}

func TestHub_DropsWhenQueueFull(t *testing.T) {
	obs := &countingObserver{}
	hub := NewHub(1, obs)
	sub, _ := hub.Subscribe("S1", "alice")

	hub.Publish("S1", models.UserReady{ReadyCount: 1})
	if n := hub.Publish("S1", models.UserReady{ReadyCount: 2}); n != 0 {
		t.Errorf("delivered to full queue: %d", n)
	}
	if obs.dropped != 1 {
		t.Errorf("dropped: expected 1, got %d", obs.dropped)
	}

	sub.Close()
	events := drain(sub)
	if len(events) != 1 || events[0].(models.UserReady).ReadyCount != 1 {
		t.Errorf("events: got %v", events)
	}
}

func TestHub_SubscribeReplacesExistingConnection(t *testing.T) {
	hub := NewHub(4, nil)
	first, _ := hub.Subscribe("S1", "alice")
	second, _ := hub.Subscribe("S1", "alice")

	if _, open := <-first.Events(); open {
		t.Fatal("expected first subscription to be closed")
	}
	if first.Termination() != models.TerminationReplaced {
		t.Errorf("termination: got %+v", first.Termination())
	}
	if hub.Subscribers("S1") != 1 {
		t.Errorf("subscribers: expected 1, got %d", hub.Subscribers("S1"))
	}

	hub.Publish("S1", models.UserReady{ReadyCount: 1})
	second.Close()
	if events := drain(second); len(events) != 1 {
		t.Errorf("second subscription events: got %v", events)
	}
}

func TestHub_CloseIsIdempotentAndRejectsNewSubscribers(t *testing.T) {
	obs := &countingObserver{}
	hub := NewHub(0, obs)
	sub, _ := hub.Subscribe("S1", "alice")

	hub.Close()
	sub.Close()

	if sub.Termination() != models.TerminationShutdown {
		t.Errorf("termination: got %+v", sub.Termination())
	}
	if _, err := hub.Subscribe("S1", "bob"); !errors.Is(err, ErrClosed) {
		t.Errorf("Subscribe after Close: expected ErrClosed, got %v", err)
	}
	if obs.subscribers != 0 {
		t.Errorf("subscriber gauge: expected 0, got %d", obs.subscribers)
	}
}

func TestHub_NoEventsAfterTerminate(t *testing.T) {
	hub := NewHub(4, nil)
	sub, _ := hub.Subscribe("S1", "alice")

	hub.Publish("S1", models.SessionExpired{Reason: "Session Expired"})
	hub.Terminate("S1", models.TerminationExpired)
	if n := hub.Publish("S1", models.UserReady{ReadyCount: 3}); n != 0 {
		t.Errorf("delivered after terminate: %d", n)
	}

	events := drain(sub)
	if len(events) != 1 || events[0].Type() != models.EventSessionExpired {
		t.Errorf("events: got %v", events)
	}
}

type countingObserver struct {
	dropped     int
	subscribers int
}

func (o *countingObserver) EventPublished(models.EventType, int) {}
func (o *countingObserver) EventDropped(models.EventType)        { o.dropped++ }
func (o *countingObserver) SubscribersChanged(delta int)         { o.subscribers += delta }
