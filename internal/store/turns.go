package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TurnRow is one visitor exchange as written to sculpture_turns.
type TurnRow struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	TurnNumber  int
	UserText    string
	DisplayText string
	Cues        []string
	Safety      bool
	Tone        string
	Tier        string
	Mood        string
	Themes      []string
	ErrorKind   string
	CreatedAt   time.Time
}

// RecordTurn appends a turn to the log. The log is write-mostly and is never
// used to restore live sessions.
func (s *Store) RecordTurn(ctx context.Context, t TurnRow) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Cues == nil {
		t.Cues = []string{}
	}
	if t.Themes == nil {
		t.Themes = []string{}
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sculpture_turns (id, session_id, turn_number, user_text, display_text, cues, safety, tone, tier, mood, themes, error_kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.SessionID, t.TurnNumber, t.UserText, t.DisplayText, t.Cues, t.Safety, t.Tone, t.Tier, t.Mood, t.Themes, t.ErrorKind, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// ListTurns returns a session's turns in order.
func (s *Store) ListTurns(ctx context.Context, sessionID uuid.UUID) ([]TurnRow, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, session_id, turn_number, user_text, display_text, cues, safety, tone, tier, mood, themes, error_kind, created_at
		FROM sculpture_turns WHERE session_id = $1
		ORDER BY turn_number`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var out []TurnRow
	for rows.Next() {
		var t TurnRow
		if err := rows.Scan(&t.ID, &t.SessionID, &t.TurnNumber, &t.UserText, &t.DisplayText, &t.Cues, &t.Safety, &t.Tone, &t.Tier, &t.Mood, &t.Themes, &t.ErrorKind, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// SafetyCount returns how many turns since the given time tripped the crisis override.
func (s *Store) SafetyCount(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `
		SELECT count(*) FROM sculpture_turns WHERE safety AND created_at >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count safety turns: %w", err)
	}
	return n, nil
}
