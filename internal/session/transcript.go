package session

import "time"

// Role identifies who produced a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one line of the chat transcript. Cues are only set on assistant entries.
type Entry struct {
	Role   Role      `json:"role"`
	Text   string    `json:"text"`
	Cues   []string  `json:"cues,omitempty"`
	Safety bool      `json:"safety,omitempty"`
	At     time.Time `json:"at"`
}

// Transcript is the ordered chat history of one session.
type Transcript []Entry

// LastCues returns the cues of the most recent assistant entry that has any.
func (t Transcript) LastCues() []string {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == RoleAssistant && len(t[i].Cues) > 0 {
			return t[i].Cues
		}
	}
	return nil
}
