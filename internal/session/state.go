package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/heartmind/internal/mood"
	"github.com/MikeSquared-Agency/heartmind/internal/theme"
)

// State is the sculpture's per-session memory. It is a value: transitions
// return a new State rather than mutating the old one.
type State struct {
	ID               uuid.UUID `json:"id"`
	Mood             mood.Mood `json:"mood"`
	Themes           theme.Set `json:"themes"`
	InteractionCount int       `json:"interaction_count"`
	StartedAt        time.Time `json:"started_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// New returns a fresh state with the mood for now.
func New(id uuid.UUID, now time.Time) State {
	return State{
		ID:        id,
		Mood:      mood.At(now),
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Advance records one visitor turn: the interaction count increments, the
// mood is recomputed from now, and themes found in input are added.
func Advance(s State, input string, now time.Time) State {
	next := s
	next.InteractionCount++
	next.Mood = mood.At(now)
	next.Themes = s.Themes.Add(theme.Extract(input)...)
	next.UpdatedAt = now
	return next
}
