package prompt

import "fmt"

// LengthTier scales response length with how engaged the visitor is.
type LengthTier string

const (
	TierShort  LengthTier = "short"
	TierMedium LengthTier = "medium"
	TierLong   LengthTier = "long"
)

// TierFor maps a visitor interaction count to a length tier:
// 1 (or less) is short, 2-3 medium, 4+ long.
func TierFor(visitorCount int) LengthTier {
	switch {
	case visitorCount <= 1:
		return TierShort
	case visitorCount <= 3:
		return TierMedium
	default:
		return TierLong
	}
}

// Instruction is the length sentence placed in the prompt.
func (t LengthTier) Instruction() string {
	switch t {
	case TierMedium:
		return "Medium length response: 3-4 sentences. Building engagement."
	case TierLong:
		return "Can be longer and deeper: 4-6 sentences. Sustained engagement."
	default:
		return "Keep response SHORT: 2-3 sentences maximum. This is first contact."
	}
}

// InteractionState is the sensor-derived presence state of the visitor.
type InteractionState string

const (
	StateFirstContact  InteractionState = "first_contact"
	StateActive        InteractionState = "active"
	StateRepeatVisitor InteractionState = "repeat_visitor"
)

// ParseInteractionState accepts the three known states; empty input means first contact.
func ParseInteractionState(s string) (InteractionState, error) {
	switch InteractionState(s) {
	case "", StateFirstContact:
		return StateFirstContact, nil
	case StateActive:
		return StateActive, nil
	case StateRepeatVisitor:
		return StateRepeatVisitor, nil
	default:
		return StateFirstContact, fmt.Errorf("unknown interaction state %q", s)
	}
}
