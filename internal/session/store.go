// Package session holds every live GroupSession and is the only place session
// state is mutated.
//
// Each session has its own mutex: all mutations of one session are
// linearized, different sessions proceed in parallel. Events produced by a
// mutation are published while the session is still held, so members see
// them in linearization order.
package session

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/meetnmeal/internal/models"
)

// codeAlphabet leaves out characters that are easy to misread (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	codeLength      = 6
	maxCodeAttempts = 16
)

// Publisher delivers session events to connected members.
type Publisher interface {
	Publish(sessionID string, event models.Event) int
	Terminate(sessionID string, t models.Termination)
}

// ExpireHook runs after a session has been destroyed. It receives a copy of
// the session as it was when it expired.
type ExpireHook func(s *models.GroupSession, t models.Termination)

// Status is the readiness summary of a session.
type Status struct {
	Joined int
	Ready  int
	State  models.SessionState
}

// Store holds all live sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	hooks    []ExpireHook

	publisher Publisher
	now       func() time.Time
	newCode   func() string
	newUserID func() string
}

type entry struct {
	mu      sync.Mutex
	session *models.GroupSession
	nextSeq int
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCodeGenerator overrides how session codes are generated.
func WithCodeGenerator(gen func() string) Option {
	return func(s *Store) { s.newCode = gen }
}

// NewStore creates an empty store publishing events to pub. pub may be nil,
// in which case events are discarded.
func NewStore(pub Publisher, opts ...Option) *Store {
	s := &Store{
		sessions:  make(map[string]*entry),
		publisher: pub,
		now:       time.Now,
		newCode:   randomCode,
		newUserID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnExpire registers a hook run after each session is destroyed.
func (s *Store) OnExpire(hook ExpireHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Create starts a new OPEN session and returns its code.
func (s *Store) Create() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for range maxCodeAttempts {
		id := s.newCode()
		if _, taken := s.sessions[id]; taken {
			continue
		}
		s.sessions[id] = &entry{session: models.NewGroupSession(id, s.now())}
		slog.Debug("Session created", "group_id", id)
		return id, nil
	}
	return "", fmt.Errorf("could not allocate a session code after %d attempts", maxCodeAttempts)
}

// Join adds a member to an OPEN session and returns the new member's id.
func (s *Store) Join(id string) (string, error) {
	var userID string
	err := s.Mutate(id, func(tx *Txn) error {
		sess := tx.Session
		if sess.State != models.StateOpen {
			return fmt.Errorf("%w: cannot join a %s session", models.ErrWrongState, sess.State)
		}
		userID = s.newUserID()
		tx.entry.nextSeq++
		sess.Members[userID] = &models.Member{UserID: userID, JoinedAt: tx.entry.nextSeq}
		sess.Order = append(sess.Order, userID)

		joined, ready := Counts(sess)
		tx.Emit(models.UserJoined{JoinedCount: joined, ReadyCount: ready})
		return nil
	})
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Submit records a member's preferences and marks them ready. Submitting again
// after the member is ready is a no-op.
func (s *Store) Submit(id, userID string, prefs models.PreferenceSet) error {
	return s.Mutate(id, func(tx *Txn) error {
		sess := tx.Session
		member, ok := sess.Members[userID]
		if !ok {
			return fmt.Errorf("%w: member %q in session %q", models.ErrNotFound, userID, id)
		}
		if sess.State != models.StateOpen {
			return fmt.Errorf("%w: cannot submit to a %s session", models.ErrWrongState, sess.State)
		}
		if member.Ready() {
			return nil
		}
		p := prefs.Clone()
		member.Preferences = &p

		_, ready := Counts(sess)
		tx.Emit(models.UserReady{ReadyCount: ready})
		return nil
	})
}

// Status returns the joined and ready counts of a session.
func (s *Store) Status(id string) (Status, error) {
	var st Status
	err := s.view(id, func(sess *models.GroupSession) {
		st.Joined, st.Ready = Counts(sess)
		st.State = sess.State
	})
	return st, err
}

// Get returns a copy of the session.
func (s *Store) Get(id string) (*models.GroupSession, error) {
	var out *models.GroupSession
	err := s.view(id, func(sess *models.GroupSession) {
		out = sess.Clone()
	})
	return out, err
}

// Member reports ErrNotFound unless userID is a member of session id.
func (s *Store) Member(id, userID string) error {
	var found bool
	if err := s.view(id, func(sess *models.GroupSession) {
		_, found = sess.Members[userID]
	}); err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: member %q in session %q", models.ErrNotFound, userID, id)
	}
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// IDs returns the codes of all live sessions.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Idle returns the ids of OPEN and RESULTS_READY sessions whose last activity
// is before the given time.
func (s *Store) Idle(before time.Time) []string {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.sessions))
	for _, e := range s.sessions {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	var ids []string
	for _, e := range entries {
		e.mu.Lock()
		sess := e.session
		if (sess.State == models.StateOpen || sess.State == models.StateResultsReady) &&
			sess.LastActivity.Before(before) {
			ids = append(ids, sess.ID)
		}
		e.mu.Unlock()
	}
	return ids
}

// Txn is a serialized mutation of one session. It is only valid inside the
// function passed to Mutate; neither the Txn nor Session may be retained.
type Txn struct {
	Session *models.GroupSession

	store       *Store
	entry       *entry
	termination *models.Termination
}

// Now returns the store's current time.
func (tx *Txn) Now() time.Time {
	return tx.store.now()
}

// Emit publishes an event to the session's members. Events emitted within one
// transaction are delivered in order, after events of earlier transactions.
func (tx *Txn) Emit(event models.Event) {
	if tx.store.publisher == nil {
		return
	}
	tx.store.publisher.Publish(tx.Session.ID, event)
}

// Expire marks the session EXPIRED. When the transaction commits the store
// emits SESSION_EXPIRED, terminates all member connections with t and removes
// the session.
func (tx *Txn) Expire(t models.Termination) {
	tx.Session.State = models.StateExpired
	tx.Session.ClosingDeadline = nil
	tx.Session.TimeLeft = 0
	tx.termination = &t
}

// Mutate runs fn with exclusive access to session id. Changes are not rolled
// back when fn returns an error, so fn validates before it mutates.
func (s *Store) Mutate(id string, fn func(tx *Txn) error) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if e.session.State == models.StateExpired {
		e.mu.Unlock()
		return notFound(id)
	}
	tx := &Txn{Session: e.session, store: s, entry: e}
	err = fn(tx)
	if err == nil && tx.termination == nil {
		e.session.LastActivity = s.now()
	}

	var expired *models.GroupSession
	if tx.termination != nil {
		expired = s.destroy(tx)
	}
	e.mu.Unlock()

	if expired != nil {
		s.runHooks(expired, *tx.termination)
	}
	return err
}

// destroy finishes an expiring transaction. Called with the entry held.
func (s *Store) destroy(tx *Txn) *models.GroupSession {
	id := tx.Session.ID
	t := *tx.termination
	if s.publisher != nil {
		s.publisher.Publish(id, models.SessionExpired{Reason: t.Reason})
		s.publisher.Terminate(id, t)
	}

	s.mu.Lock()
	if cur, ok := s.sessions[id]; ok && cur == tx.entry {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	slog.Info("Session expired", "group_id", id, "reason", t.Reason)
	return tx.Session.Clone()
}

func (s *Store) runHooks(sess *models.GroupSession, t models.Termination) {
	s.mu.RLock()
	hooks := append([]ExpireHook(nil), s.hooks...)
	s.mu.RUnlock()
	for _, hook := range hooks {
		hook(sess, t)
	}
}

func (s *Store) view(id string, fn func(sess *models.GroupSession)) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session.State == models.StateExpired {
		return notFound(id)
	}
	fn(e.session)
	return nil
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, notFound(id)
	}
	return e, nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: session %q", models.ErrNotFound, id)
}

func randomCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
