package hermes

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MikeSquared-Agency/heartmind/internal/lighting"
)

const (
	// SubjectLightingCues carries the cues of each reply to the effect layer.
	SubjectLightingCues = "sculpture.lighting.cues"
	// SubjectSafetyTriggered is published when the crisis override fires.
	// Visitor text is never included.
	SubjectSafetyTriggered = "sculpture.safety.triggered"
	// SubjectRegistered announces the controller on startup.
	SubjectRegistered = "sculpture.agent.registered"
)

// LightingEvent is the payload on SubjectLightingCues.
type LightingEvent struct {
	SessionID string         `json:"session_id"`
	TurnID    string         `json:"turn_id"`
	Mood      string         `json:"mood"`
	Safety    bool           `json:"safety"`
	Cues      []lighting.Cue `json:"cues"`
	Timestamp time.Time      `json:"timestamp"`
}

// SafetyEvent is the payload on SubjectSafetyTriggered.
type SafetyEvent struct {
	SessionID string    `json:"session_id"`
	TurnID    string    `json:"turn_id"`
	Phrase    string    `json:"phrase"`
	Timestamp time.Time `json:"timestamp"`
}

// DecodeLightingEvent parses a SubjectLightingCues payload.
func DecodeLightingEvent(data []byte) (LightingEvent, error) {
	var evt LightingEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return LightingEvent{}, fmt.Errorf("decode lighting event: %w", err)
	}
	return evt, nil
}
