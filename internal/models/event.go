package models

import "encoding/json"

// EventType names a push event on the wire.
type EventType string

// Event types
const (
	EventUserJoined     EventType = "USER_JOINED"
	EventUserReady      EventType = "USER_READY"
	EventSessionClosing EventType = "SESSION_CLOSING"
	EventSessionExpired EventType = "SESSION_EXPIRED"
)

// Event is a session lifecycle event delivered to connected members.
// The set of implementations is closed: UserJoined, UserReady,
// SessionClosing and SessionExpired.
type Event interface {
	Type() EventType
	json.Marshaler
}

// UserJoined is sent after a member joins.
type UserJoined struct {
	JoinedCount int `json:"joined_count"`
	ReadyCount  int `json:"ready_count"`
}

// UserReady is sent after a member's preferences are accepted.
type UserReady struct {
	ReadyCount int `json:"ready_count"`
}

// SessionClosing is sent when the closing countdown starts and on every tick.
type SessionClosing struct {
	TimeLeft int `json:"time_left"`
}

// SessionExpired is the last event a session ever emits. Reason repeats the
// close frame reason that follows it; the close frame is what clients act on.
type SessionExpired struct {
	Reason string `json:"reason"`
}

func (UserJoined) Type() EventType     { return EventUserJoined }
func (UserReady) Type() EventType      { return EventUserReady }
func (SessionClosing) Type() EventType { return EventSessionClosing }
func (SessionExpired) Type() EventType { return EventSessionExpired }

// MarshalJSON writes {"type":"USER_JOINED","joined_count":..,"ready_count":..}.
func (e UserJoined) MarshalJSON() ([]byte, error) {
	type payload UserJoined
	return json.Marshal(struct {
		Type EventType `json:"type"`
		payload
	}{e.Type(), payload(e)})
}

func (e UserReady) MarshalJSON() ([]byte, error) {
	type payload UserReady
	return json.Marshal(struct {
		Type EventType `json:"type"`
		payload
	}{e.Type(), payload(e)})
}

func (e SessionClosing) MarshalJSON() ([]byte, error) {
	type payload SessionClosing
	return json.Marshal(struct {
		Type EventType `json:"type"`
		payload
	}{e.Type(), payload(e)})
}

func (e SessionExpired) MarshalJSON() ([]byte, error) {
	type payload SessionExpired
	return json.Marshal(struct {
		Type EventType `json:"type"`
		payload
	}{e.Type(), payload(e)})
}

// Termination describes why a member's push connection was closed. Code and
// Reason are sent in the WebSocket close frame so clients can tell a
// finished session apart from a network error.
type Termination struct {
	Code   int
	Reason string
}

// Terminations, one per cause.
var (
	// TerminationClosed ends a session closed explicitly with no grace period.
	TerminationClosed = Termination{Code: 1000, Reason: "Session Closed"}
	// TerminationExpired ends a session whose closing countdown ran out.
	TerminationExpired = Termination{Code: 1000, Reason: "Session Expired"}
	// TerminationShutdown is used when the server stops.
	TerminationShutdown = Termination{Code: 1001, Reason: "Server Shutting Down"}
	// TerminationReplaced closes a connection superseded by a newer one for
	// the same member.
	TerminationReplaced = Termination{Code: 4001, Reason: "Connection Replaced"}
)
