package session

import (
	"fmt"

	"github.com/mmynk/meetnmeal/internal/models"
)

// Counts returns how many members joined and how many are ready.
// ready <= joined always holds.
func Counts(s *models.GroupSession) (joined, ready int) {
	for _, m := range s.Members {
		if m.Ready() {
			ready++
		}
	}
	return len(s.Members), ready
}

// CanCompute reports whether a compute may start: the session must be OPEN
// and at least one member must be ready.
func CanCompute(s *models.GroupSession) error {
	if s.State != models.StateOpen {
		return fmt.Errorf("%w: cannot compute a %s session", models.ErrWrongState, s.State)
	}
	if _, ready := Counts(s); ready == 0 {
		return fmt.Errorf("%w: no ready members", models.ErrWrongState)
	}
	return nil
}

// ReadyPreferences returns copies of the ready members' preferences in join
// order.
func ReadyPreferences(s *models.GroupSession) []models.PreferenceSet {
	out := make([]models.PreferenceSet, 0, len(s.Order))
	for _, id := range s.Order {
		m := s.Members[id]
		if m == nil || !m.Ready() {
			continue
		}
		out = append(out, m.Preferences.Clone())
	}
	return out
}
