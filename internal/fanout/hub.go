// Package fanout delivers session lifecycle events to every connected member
// of a session.
//
// Delivery is best-effort: each subscription has a bounded queue and an event
// that does not fit is dropped for that member. The REST status and result
// endpoints are the source of truth for members that miss events.
package fanout

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/mmynk/meetnmeal/internal/models"
)

// DefaultQueueSize is the per-subscription event buffer.
const DefaultQueueSize = 16

// ErrClosed is returned by Subscribe after the hub has been closed.
var ErrClosed = errors.New("fanout hub closed")

// Observer receives delivery statistics. It may be nil.
type Observer interface {
	EventPublished(t models.EventType, delivered int)
	EventDropped(t models.EventType)
	SubscribersChanged(delta int)
}

// Hub routes events to subscriptions, keyed by session id then user id.
type Hub struct {
	mu        sync.Mutex
	sessions  map[string]map[string]*Subscription
	closed    bool
	queueSize int
	observer  Observer
}

// NewHub creates a hub. queueSize <= 0 selects DefaultQueueSize.
func NewHub(queueSize int, observer Observer) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		sessions:  make(map[string]map[string]*Subscription),
		queueSize: queueSize,
		observer:  observer,
	}
}

// Subscription is one member's event stream. Events is closed when the
// subscription ends; Termination then says why.
type Subscription struct {
	SessionID string
	UserID    string

	hub         *Hub
	events      chan models.Event
	termination models.Termination
	done        bool
}

// Events returns the subscription's event channel.
func (s *Subscription) Events() <-chan models.Event {
	return s.events
}

// Termination returns why the subscription ended. It is only meaningful after
// Events has been closed; a zero value means the member unsubscribed.
func (s *Subscription) Termination() models.Termination {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	return s.termination
}

// Close unsubscribes. It is safe to call more than once and after the hub
// terminated the subscription.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	s.hub.removeLocked(s, models.Termination{})
}

// Subscribe registers a member's connection for a session. An existing
// subscription for the same member is terminated and replaced.
func (h *Hub) Subscribe(sessionID, userID string) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrClosed
	}

	members := h.sessions[sessionID]
	if members == nil {
		members = make(map[string]*Subscription)
		h.sessions[sessionID] = members
	}
	if old := members[userID]; old != nil {
		slog.Debug("Replacing member connection", "group_id", sessionID, "user_id", userID)
		h.removeLocked(old, models.TerminationReplaced)
		if h.sessions[sessionID] == nil {
			members = make(map[string]*Subscription)
			h.sessions[sessionID] = members
		}
	}

	sub := &Subscription{
		SessionID: sessionID,
		UserID:    userID,
		hub:       h,
		events:    make(chan models.Event, h.queueSize),
	}
	members[userID] = sub
	if h.observer != nil {
		h.observer.SubscribersChanged(1)
	}
	return sub, nil
}

// Publish delivers event to every subscription of the session without
// blocking and returns how many subscriptions accepted it.
func (h *Hub) Publish(sessionID string, event models.Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, sub := range h.sessions[sessionID] {
		select {
		case sub.events <- event:
			delivered++
		default:
			slog.Warn("Dropping event for slow member",
				"group_id", sessionID,
				"user_id", sub.UserID,
				"type", event.Type(),
			)
			if h.observer != nil {
				h.observer.EventDropped(event.Type())
			}
		}
	}
	if h.observer != nil {
		h.observer.EventPublished(event.Type(), delivered)
	}
	return delivered
}

// Terminate ends every subscription of the session with t.
func (h *Hub) Terminate(sessionID string, t models.Termination) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.sessions[sessionID] {
		h.removeLocked(sub, t)
	}
	delete(h.sessions, sessionID)
}

// Subscribers returns the number of live subscriptions for a session.
func (h *Hub) Subscribers(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions[sessionID])
}

// Close terminates every subscription and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for id, members := range h.sessions {
		for _, sub := range members {
			h.removeLocked(sub, models.TerminationShutdown)
		}
		delete(h.sessions, id)
	}
}

// removeLocked detaches sub and closes its channel. Called with h.mu held.
func (h *Hub) removeLocked(sub *Subscription, t models.Termination) {
	if sub.done {
		return
	}
	sub.done = true
	sub.termination = t
	close(sub.events)

	if members := h.sessions[sub.SessionID]; members != nil && members[sub.UserID] == sub {
		delete(members, sub.UserID)
		if len(members) == 0 {
			delete(h.sessions, sub.SessionID)
		}
	}
	if h.observer != nil {
		h.observer.SubscribersChanged(-1)
	}
}
