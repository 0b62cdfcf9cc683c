package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

type record struct {
	state      State
	transcript Transcript
}

// Registry holds live sessions in memory. Nothing survives a restart.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*record
	now      func() time.Time
}

func NewRegistry(now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		sessions: make(map[uuid.UUID]*record),
		now:      now,
	}
}

// Now is the registry's clock, shared with callers that advance state.
func (r *Registry) Now() time.Time {
	return r.now()
}

// Create starts a new session and returns its initial state.
func (r *Registry) Create() State {
	st := New(uuid.New(), r.now())
	r.mu.Lock()
	r.sessions[st.ID] = &record{state: st}
	r.mu.Unlock()
	return st
}

// Get returns the current state of a session.
func (r *Registry) Get(id uuid.UUID) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return rec.state, nil
}

// Update stores st as the latest state of its session.
func (r *Registry) Update(st State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[st.ID]
	if !ok {
		return ErrNotFound
	}
	rec.state = st
	return nil
}

// Advance applies one visitor turn to a session atomically and returns the new state.
func (r *Registry) Advance(id uuid.UUID, input string) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	rec.state = Advance(rec.state, input, r.now())
	return rec.state, nil
}

// Append adds entries to a session's transcript.
func (r *Registry) Append(id uuid.UUID, entries ...Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[id]
	if !ok {
		return ErrNotFound
	}
	rec.transcript = append(rec.transcript, entries...)
	return nil
}

// Transcript returns a copy of a session's chat history.
func (r *Registry) Transcript(id uuid.UUID) (Transcript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(Transcript, len(rec.transcript))
	copy(out, rec.transcript)
	return out, nil
}

func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// List returns all live sessions, oldest first.
func (r *Registry) List() []State {
	r.mu.Lock()
	out := make([]State, 0, len(r.sessions))
	for _, rec := range r.sessions {
		out = append(out, rec.state)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
