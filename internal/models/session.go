package models

import "time"

// SessionState is the lifecycle state of a GroupSession.
type SessionState string

// Session states. Transitions only move forward, except COMPUTING -> OPEN
// when the recommendation engine fails.
const (
	StateOpen         SessionState = "OPEN"
	StateComputing    SessionState = "COMPUTING"
	StateResultsReady SessionState = "RESULTS_READY"
	StateClosing      SessionState = "CLOSING"
	StateExpired      SessionState = "EXPIRED"
)

// HasResult reports whether a session in this state holds a computed result.
func (s SessionState) HasResult() bool {
	return s == StateResultsReady || s == StateClosing
}

// GroupSession is one group's decision session.
type GroupSession struct {
	// ID is the short join code shared with the group.
	ID string

	// State is the current lifecycle state.
	State SessionState

	// Members holds every member keyed by user id.
	Members map[string]*Member

	// Order lists member ids in join order, for display and aggregation.
	Order []string

	// Result is the ranked recommendation list, index 0 is the top pick.
	// Set once when the session reaches RESULTS_READY and never modified.
	Result []Recommendation

	// ClosingDeadline is set only while State is CLOSING.
	ClosingDeadline *time.Time

	// TimeLeft is the number of countdown seconds remaining while CLOSING.
	TimeLeft int

	CreatedAt    time.Time
	LastActivity time.Time
}

// NewGroupSession creates an OPEN session with no members.
func NewGroupSession(id string, now time.Time) *GroupSession {
	return &GroupSession{
		ID:           id,
		State:        StateOpen,
		Members:      make(map[string]*Member),
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Member is a participant of a GroupSession.
type Member struct {
	// UserID is opaque and unique within the session.
	UserID string

	// JoinedAt is the member's position in join order, starting at 1.
	JoinedAt int

	// Preferences is nil until the member submits.
	Preferences *PreferenceSet
}

// Ready reports whether the member has submitted preferences.
func (m *Member) Ready() bool {
	return m.Preferences != nil
}

// Clone returns a deep copy of the session so callers outside the store can
// read it without holding the session lock.
func (s *GroupSession) Clone() *GroupSession {
	out := *s
	out.Members = make(map[string]*Member, len(s.Members))
	for id, m := range s.Members {
		mc := *m
		if m.Preferences != nil {
			p := m.Preferences.Clone()
			mc.Preferences = &p
		}
		out.Members[id] = &mc
	}
	out.Order = append([]string(nil), s.Order...)
	if s.Result != nil {
		out.Result = append([]Recommendation(nil), s.Result...)
	}
	if s.ClosingDeadline != nil {
		d := *s.ClosingDeadline
		out.ClosingDeadline = &d
	}
	return &out
}

// SessionRecord is the archived summary of a finished session.
type SessionRecord struct {
	ID          string
	CreatedAt   int64
	ClosedAt    int64
	MemberCount int
	ReadyCount  int

	// Reason is the termination reason sent to connected members.
	Reason string

	// TopPicks holds the names of the ranked result, best first.
	TopPicks []string
}
