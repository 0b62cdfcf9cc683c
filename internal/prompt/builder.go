package prompt

import (
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/heartmind/internal/mood"
	"github.com/MikeSquared-Agency/heartmind/internal/safety"
	"github.com/MikeSquared-Agency/heartmind/internal/theme"
)

// Request carries everything the prompt depends on for one turn.
type Request struct {
	Input            string
	State            InteractionState
	Mood             mood.Mood
	InteractionCount int
	Themes           theme.Set
	VisitorCount     int
	// Tone overrides detection when set.
	Tone Tone
}

// Prompt is the assembled context plus what was decided while building it.
type Prompt struct {
	Context      string
	Safety       bool
	SafetyPhrase string
	Tier         LengthTier
	Tone         Tone
	Topics       []Topic
}

// Build assembles the context for a turn. The safety gate is checked first
// and, when it fires, replaces the whole prompt.
func Build(req Request) Prompt {
	if phrase, ok := safety.Detect(req.Input); ok {
		return Prompt{
			Context:      safety.ResourcesPrompt(req.Input),
			Safety:       true,
			SafetyPhrase: phrase,
		}
	}

	tone := req.Tone
	if tone == "" {
		tone = DetectTone(req.Input)
	}
	state := req.State
	if state == "" {
		state = StateFirstContact
	}
	tier := TierFor(req.VisitorCount)
	topics := SelectKnowledge(req.Input)

	snippets := make([]string, 0, len(topics))
	for _, t := range topics {
		snippets = append(snippets, knowledge[t])
	}

	ctx := fmt.Sprintf(contextTemplate,
		state,
		req.Mood.Description(),
		req.InteractionCount,
		req.Themes.String(),
		tier.Instruction(),
		strings.Join(snippets, " "),
		tone,
	)

	return Prompt{
		Context: ctx,
		Tier:    tier,
		Tone:    tone,
		Topics:  topics,
	}
}

// UserMessage is the single user-role message sent to the model.
func UserMessage(context, input string) string {
	return fmt.Sprintf(userMessageTemplate, context, input)
}
