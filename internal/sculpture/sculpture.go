package sculpture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/heartmind/internal/anthropic"
	"github.com/MikeSquared-Agency/heartmind/internal/hermes"
	"github.com/MikeSquared-Agency/heartmind/internal/lighting"
	"github.com/MikeSquared-Agency/heartmind/internal/prompt"
	"github.com/MikeSquared-Agency/heartmind/internal/safety"
	"github.com/MikeSquared-Agency/heartmind/internal/session"
	"github.com/MikeSquared-Agency/heartmind/internal/store"
)

// DefaultMaxTokens caps the length of each generated reply.
const DefaultMaxTokens = 300

// ErrEmptyInput is returned for blank visitor messages.
var ErrEmptyInput = errors.New("empty input")

// Completer is the model call. *anthropic.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, system string, messages []anthropic.Message, maxTokens int) (string, error)
}

// CuePublisher forwards lighting cues to the effect layer. *hermes.Client satisfies it.
type CuePublisher interface {
	PublishCues(ctx context.Context, evt hermes.LightingEvent) error
	PublishSafety(ctx context.Context, evt hermes.SafetyEvent) error
}

// TurnRecorder logs completed turns. *store.Store satisfies it.
type TurnRecorder interface {
	RecordTurn(ctx context.Context, t store.TurnRow) error
}

// Sculpture runs visitor turns against live sessions.
type Sculpture struct {
	sessions  *session.Registry
	llm       Completer
	publisher CuePublisher
	recorder  TurnRecorder
	maxTokens int
	logger    *slog.Logger
}

// Option configures optional collaborators.
type Option func(*Sculpture)

// WithPublisher sends cues over the given publisher after each turn.
func WithPublisher(p CuePublisher) Option {
	return func(s *Sculpture) { s.publisher = p }
}

// WithRecorder logs each turn to the given recorder.
func WithRecorder(r TurnRecorder) Option {
	return func(s *Sculpture) { s.recorder = r }
}

// WithMaxTokens overrides DefaultMaxTokens.
func WithMaxTokens(n int) Option {
	return func(s *Sculpture) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

func New(sessions *session.Registry, llm Completer, logger *slog.Logger, opts ...Option) *Sculpture {
	s := &Sculpture{
		sessions:  sessions,
		llm:       llm,
		maxTokens: DefaultMaxTokens,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sessions exposes the registry the sculpture advances.
func (s *Sculpture) Sessions() *session.Registry {
	return s.sessions
}

// Input is one visitor message.
type Input struct {
	SessionID    uuid.UUID
	Text         string
	VisitorCount int
	State        prompt.InteractionState
}

// Result is what the presentation layer renders for a turn.
type Result struct {
	TurnID    uuid.UUID         `json:"turn_id"`
	Display   string            `json:"display"`
	Cues      []lighting.Cue    `json:"cues"`
	Safety    bool              `json:"safety"`
	Tone      prompt.Tone       `json:"tone,omitempty"`
	Tier      prompt.LengthTier `json:"tier,omitempty"`
	ErrorKind anthropic.Kind    `json:"error_kind,omitempty"`
	State     session.State     `json:"state"`
}

// Turn processes one visitor message: advance state, build the prompt (safety
// gate first), call the model once, split the reply into text and cues, then
// publish and record. A failed model call degrades to a fallback reply; only
// an unknown session, blank input or a cancelled context return an error.
func (s *Sculpture) Turn(ctx context.Context, in Input) (*Result, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	st, err := s.sessions.Advance(in.SessionID, text)
	if err != nil {
		return nil, fmt.Errorf("advance session %s: %w", in.SessionID, err)
	}

	p := prompt.Build(prompt.Request{
		Input:            text,
		State:            in.State,
		Mood:             st.Mood,
		InteractionCount: st.InteractionCount,
		Themes:           st.Themes,
		VisitorCount:     in.VisitorCount,
	})

	turnID := uuid.New()
	logger := s.logger.With("session_id", st.ID.String(), "turn_id", turnID.String())

	if p.Safety {
		logger.Warn("safety override triggered", "phrase", p.SafetyPhrase)
	} else {
		logger.Info("turn prompt built",
			"mood", st.Mood,
			"themes", st.Themes.String(),
			"tier", p.Tier,
			"tone", p.Tone,
			"interaction_count", st.InteractionCount,
		)
	}

	messages := []anthropic.Message{
		{Role: "user", Content: prompt.UserMessage(p.Context, text)},
	}

	var errKind anthropic.Kind
	raw, err := s.llm.Complete(ctx, "", messages, s.maxTokens)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("turn cancelled: %w", ctxErr)
		}
		errKind = anthropic.KindOf(err)
		if errKind == "" {
			errKind = anthropic.KindRequest
		}
		logger.Error("model call failed", "error", err, "kind", errKind)
		if p.Safety {
			raw = safety.FallbackReply
		} else {
			raw = anthropic.Fallback(err)
		}
	}

	reply := lighting.Parse(raw)
	cues := lighting.Cues(reply.Cues)
	now := s.sessions.Now()

	if err := s.sessions.Append(st.ID,
		session.Entry{Role: session.RoleUser, Text: text, At: now},
		session.Entry{Role: session.RoleAssistant, Text: reply.Display, Cues: reply.Cues, Safety: p.Safety, At: now},
	); err != nil {
		logger.Warn("failed to append transcript", "error", err)
	}

	s.publish(ctx, logger, turnID, st, p, cues, now)
	s.record(ctx, logger, turnID, st, text, reply, p, errKind, now)

	logger.Info("turn complete", "cues", len(cues), "safety", p.Safety, "display_len", len(reply.Display))

	return &Result{
		TurnID:    turnID,
		Display:   reply.Display,
		Cues:      cues,
		Safety:    p.Safety,
		Tone:      p.Tone,
		Tier:      p.Tier,
		ErrorKind: errKind,
		State:     st,
	}, nil
}

func (s *Sculpture) publish(ctx context.Context, logger *slog.Logger, turnID uuid.UUID, st session.State, p prompt.Prompt, cues []lighting.Cue, now time.Time) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCues(ctx, hermes.LightingEvent{
		SessionID: st.ID.String(),
		TurnID:    turnID.String(),
		Mood:      string(st.Mood),
		Safety:    p.Safety,
		Cues:      cues,
		Timestamp: now.UTC(),
	}); err != nil {
		logger.Error("failed to publish lighting cues", "error", err)
	}
	if !p.Safety {
		return
	}
	if err := s.publisher.PublishSafety(ctx, hermes.SafetyEvent{
		SessionID: st.ID.String(),
		TurnID:    turnID.String(),
		Phrase:    p.SafetyPhrase,
		Timestamp: now.UTC(),
	}); err != nil {
		logger.Error("failed to publish safety event", "error", err)
	}
}

func (s *Sculpture) record(ctx context.Context, logger *slog.Logger, turnID uuid.UUID, st session.State, text string, reply lighting.Response, p prompt.Prompt, errKind anthropic.Kind, now time.Time) {
	if s.recorder == nil {
		return
	}
	themes := make([]string, 0, st.Themes.Len())
	for _, t := range st.Themes.Items() {
		themes = append(themes, string(t))
	}
	if err := s.recorder.RecordTurn(ctx, store.TurnRow{
		ID:          turnID,
		SessionID:   st.ID,
		TurnNumber:  st.InteractionCount,
		UserText:    text,
		DisplayText: reply.Display,
		Cues:        reply.Cues,
		Safety:      p.Safety,
		Tone:        string(p.Tone),
		Tier:        string(p.Tier),
		Mood:        string(st.Mood),
		Themes:      themes,
		ErrorKind:   string(errKind),
		CreatedAt:   now.UTC(),
	}); err != nil {
		logger.Error("failed to record turn", "error", err)
	}
}
