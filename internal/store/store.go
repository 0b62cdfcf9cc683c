package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS sculpture_turns (
	id            uuid PRIMARY KEY,
	session_id    uuid NOT NULL,
	turn_number   integer NOT NULL,
	user_text     text NOT NULL,
	display_text  text NOT NULL,
	cues          text[] NOT NULL DEFAULT '{}',
	safety        boolean NOT NULL DEFAULT false,
	tone          text NOT NULL DEFAULT '',
	tier          text NOT NULL DEFAULT '',
	mood          text NOT NULL,
	themes        text[] NOT NULL DEFAULT '{}',
	error_kind    text NOT NULL DEFAULT '',
	created_at    timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS sculpture_turns_session_idx ON sculpture_turns (session_id, turn_number);
`

// EnsureSchema creates the turn log table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
