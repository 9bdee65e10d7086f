package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/meetnmeal/internal/models"
)

// Restaurant names may contain commas, so picks are newline separated.
const picksSeparator = "\n"

// ArchiveSession stores the summary of a destroyed session.
func (s *SQLiteStore) ArchiveSession(ctx context.Context, rec *models.SessionRecord) error {
	if rec.ClosedAt == 0 {
		rec.ClosedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_archive (id, created_at, closed_at, member_count, ready_count, reason, top_picks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, rec.ClosedAt, rec.MemberCount, rec.ReadyCount, rec.Reason,
		strings.Join(rec.TopPicks, picksSeparator),
	)
	if err != nil {
		return fmt.Errorf("failed to archive session: %w", err)
	}

	return nil
}

// GetSessionRecord returns the latest archived record for a session code.
// Codes are reused once a session is gone, so several records may exist.
func (s *SQLiteStore) GetSessionRecord(ctx context.Context, id string) (*models.SessionRecord, error) {
	rec := &models.SessionRecord{}
	var picks string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, closed_at, member_count, ready_count, reason, top_picks
		 FROM session_archive WHERE id = ? ORDER BY seq DESC LIMIT 1`,
		id,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.ClosedAt, &rec.MemberCount, &rec.ReadyCount, &rec.Reason, &picks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no archived session %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session record: %w", err)
	}

	if picks != "" {
		rec.TopPicks = strings.Split(picks, picksSeparator)
	}
	return rec, nil
}
