package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/meetnmeal/internal/models"
)

// recorder is a Publisher that keeps every event per session.
type recorder struct {
	mu           sync.Mutex
	events       map[string][]models.Event
	terminations map[string]models.Termination
}

func newRecorder() *recorder {
	return &recorder{
		events:       make(map[string][]models.Event),
		terminations: make(map[string]models.Termination),
	}
}

func (r *recorder) Publish(id string, e models.Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[id] = append(r.events[id], e)
	return 1
}

func (r *recorder) Terminate(id string, t models.Termination) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminations[id] = t
}

func (r *recorder) eventsFor(id string) []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events[id]...)
}

func prefs() models.PreferenceSet {
	return models.PreferenceSet{
		Cuisines: []string{"thai"},
		Budget:   700,
		Location: models.Location{Area: "hsr"},
	}
}

func TestStore_JoinSubmitStatus(t *testing.T) {
	rec := newRecorder()
	store := NewStore(rec)

	id, err := store.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(id) != codeLength {
		t.Errorf("code length: expected %d, got %q", codeLength, id)
	}

	userID, err := store.Join(id)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if userID == "" {
		t.Fatal("expected non-empty user id")
	}

	st, err := store.Status(id)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if st.Joined != 1 || st.Ready != 0 || st.State != models.StateOpen {
		t.Errorf("status after join: got %+v", st)
	}

	if err := store.Submit(id, userID, prefs()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	st, _ = store.Status(id)
	if st.Ready != 1 {
		t.Errorf("ready: expected 1, got %d", st.Ready)
	}

	events := rec.eventsFor(id)
	if len(events) != 2 {
		t.Fatalf("events: expected 2, got %d", len(events))
	}
	if joined, ok := events[0].(models.UserJoined); !ok || joined.JoinedCount != 1 || joined.ReadyCount != 0 {
		t.Errorf("first event: got %#v", events[0])
	}
	if ready, ok := events[1].(models.UserReady); !ok || ready.ReadyCount != 1 {
		t.Errorf("second event: got %#v", events[1])
	}
}

func TestStore_SubmitTwiceIsNoop(t *testing.T) {
	rec := newRecorder()
	store := NewStore(rec)
	id, _ := store.Create()
	userID, _ := store.Join(id)

	for i := 0; i < 2; i++ {
		if err := store.Submit(id, userID, prefs()); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	var readyEvents int
	for _, e := range rec.eventsFor(id) {
		if e.Type() == models.EventUserReady {
			readyEvents++
		}
	}
	if readyEvents != 1 {
		t.Errorf("USER_READY events: expected 1, got %d", readyEvents)
	}
}

func TestStore_Errors(t *testing.T) {
	store := NewStore(nil)
	id, _ := store.Create()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name:    "join unknown session",
			call:    func() error { _, err := store.Join("NOPE00"); return err },
			wantErr: models.ErrNotFound,
		},
		{
			name:    "status unknown session",
			call:    func() error { _, err := store.Status("NOPE00"); return err },
			wantErr: models.ErrNotFound,
		},
		{
			name:    "submit unknown member",
			call:    func() error { return store.Submit(id, "ghost", prefs()) },
			wantErr: models.ErrNotFound,
		},
		{
			name:    "member check unknown member",
			call:    func() error { return store.Member(id, "ghost") },
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStore_JoinRequiresOpen(t *testing.T) {
	for _, state := range []models.SessionState{
		models.StateComputing,
		models.StateResultsReady,
		models.StateClosing,
	} {
		t.Run(string(state), func(t *testing.T) {
			store := NewStore(nil)
			id, _ := store.Create()
			member, _ := store.Join(id)
			_ = store.Mutate(id, func(tx *Txn) error {
				tx.Session.State = state
				return nil
			})

			if _, err := store.Join(id); !errors.Is(err, models.ErrWrongState) {
				t.Errorf("Join: expected ErrWrongState, got %v", err)
			}
			if err := store.Submit(id, member, prefs()); !errors.Is(err, models.ErrWrongState) {
				t.Errorf("Submit: expected ErrWrongState, got %v", err)
			}
			st, _ := store.Status(id)
			if st.Joined != 1 {
				t.Errorf("joined: expected 1, got %d", st.Joined)
			}
		})
	}
}

func TestStore_ConcurrentMutationsStayConsistent(t *testing.T) {
	rec := newRecorder()
	store := NewStore(rec)
	id, _ := store.Create()

	const members = 50
	var wg sync.WaitGroup
	for i := 0; i < members; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID, err := store.Join(id)
			if err != nil {
				t.Errorf("Join failed: %v", err)
				return
			}
			if err := store.Submit(id, userID, prefs()); err != nil {
				t.Errorf("Submit failed: %v", err)
			}
		}()
	}
	wg.Wait()

	st, _ := store.Status(id)
	if st.Joined != members || st.Ready != members {
		t.Fatalf("status: expected %d/%d, got %+v", members, members, st)
	}

	// Events are published in linearization order, so counts never go back.
	var lastJoined, lastReady int
	for _, e := range rec.eventsFor(id) {
		switch ev := e.(type) {
		case models.UserJoined:
			if ev.JoinedCount <= lastJoined || ev.ReadyCount < lastReady {
				t.Fatalf("USER_JOINED out of order: %+v after joined=%d ready=%d", ev, lastJoined, lastReady)
			}
			if ev.ReadyCount > ev.JoinedCount {
				t.Fatalf("ready exceeds joined: %+v", ev)
			}
			lastJoined = ev.JoinedCount
		case models.UserReady:
			if ev.ReadyCount <= lastReady || ev.ReadyCount > lastJoined {
				t.Fatalf("USER_READY out of order: %+v after joined=%d ready=%d", ev, lastJoined, lastReady)
			}
			lastReady = ev.ReadyCount
		}
	}
}

func TestStore_ExpireDestroysSession(t *testing.T) {
	rec := newRecorder()
	store := NewStore(rec)

	var hooked []string
	store.OnExpire(func(s *models.GroupSession, term models.Termination) {
		hooked = append(hooked, s.ID+"/"+term.Reason)
	})

	id, _ := store.Create()
	_, _ = store.Join(id)

	err := store.Mutate(id, func(tx *Txn) error {
		tx.Expire(models.TerminationClosed)
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	events := rec.eventsFor(id)
	last := events[len(events)-1]
	if exp, ok := last.(models.SessionExpired); !ok || exp.Reason != "Session Closed" {
		t.Errorf("last event: got %#v", last)
	}
	if rec.terminations[id] != models.TerminationClosed {
		t.Errorf("termination: got %+v", rec.terminations[id])
	}
	if _, err := store.Status(id); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Status after expiry: expected ErrNotFound, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len: expected 0, got %d", store.Len())
	}
	if len(hooked) != 1 || hooked[0] != id+"/Session Closed" {
		t.Errorf("hooks: got %v", hooked)
	}
}

func TestStore_CreateRetriesCodeCollisions(t *testing.T) {
	codes := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
	var i int
	store := NewStore(nil, WithCodeGenerator(func() string {
		c := codes[i]
		i++
		return c
	}))

	first, err := store.Create()
	if err != nil || first != "AAAAAA" {
		t.Fatalf("first Create: got %q, %v", first, err)
	}
	second, err := store.Create()
	if err != nil || second != "BBBBBB" {
		t.Fatalf("second Create: got %q, %v", second, err)
	}
}

func TestStore_CreateGivesUpWhenCodesExhausted(t *testing.T) {
	store := NewStore(nil, WithCodeGenerator(func() string { return "SAME00" }))
	if _, err := store.Create(); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(); err == nil {
		t.Fatal("expected error when every code collides")
	}
}

func TestStore_Idle(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := NewStore(nil, WithClock(clock))

	stale, _ := store.Create()
	now = now.Add(10 * time.Minute)
	fresh, _ := store.Create()
	computing, _ := store.Create()
	_ = store.Mutate(computing, func(tx *Txn) error {
		tx.Session.State = models.StateComputing
		tx.Session.LastActivity = now.Add(-time.Hour)
		return nil
	})
	// Mutate bumps LastActivity on success, so push it back again.
	_ = store.Mutate(computing, func(tx *Txn) error {
		tx.Session.LastActivity = now.Add(-time.Hour)
		return fmt.Errorf("keep activity untouched")
	})

	idle := store.Idle(now.Add(-5 * time.Minute))
	if len(idle) != 1 || idle[0] != stale {
		t.Errorf("Idle: expected [%s], got %v (fresh=%s)", stale, idle, fresh)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore(nil)
	id, _ := store.Create()
	userID, _ := store.Join(id)
	_ = store.Submit(id, userID, prefs())

	sess, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	sess.Members[userID].Preferences.Cuisines[0] = "changed"
	sess.State = models.StateExpired

	again, _ := store.Get(id)
	if again.State != models.StateOpen {
		t.Errorf("state leaked through copy: %s", again.State)
	}
	if got := again.Members[userID].Preferences.Cuisines[0]; got != "thai" {
		t.Errorf("preferences leaked through copy: %s", got)
	}
	if len(again.Order) != 1 || again.Order[0] != userID {
		t.Errorf("order: got %v", again.Order)
	}
}
