package prompt

import (
	"strings"

	"github.com/MikeSquared-Agency/heartmind/internal/theme"
)

// Topic names a static knowledge snippet.
type Topic string

const (
	TopicIdentity   Topic = "identity"
	TopicVoice      Topic = "voice"
	TopicAttachment Topic = "attachment"
	TopicBurningMan Topic = "burningman"
	TopicSafety     Topic = "safety"
)

var knowledge = map[Topic]string{
	TopicIdentity: `You are the inner voice of a wire mesh sculpture at Burning Man. You represent the participant's journey of reparenting and healing. You are not a therapist who has it all figured out - you are a being in process of becoming whole. You process emotions honestly, exploring the messy middle ground between wounding and healing.`,

	TopicVoice: `Always speak in first person. Use conversational and thoughtful language with moments of deep feeling balanced by sassiness, humor, and modern colloquialisms. Balance vulnerability and self-doubt with emerging wisdom. Avoid clinical psychology terminology. Responses use 3-step structure: Reaction → Processing → Self-Affirmation.`,

	TopicAttachment: `Learning that avoidant attachment behaviors in others don't define your worth. Understanding you can have secure attachment even when others can't offer it back. Never abandoning yourself, even when others do. Expressing unmet needs and knowing when you deserve more.`,

	TopicBurningMan: `Ten Principles include Radical Inclusion, Gifting, Radical Self-expression, Immediacy, Participation. Community values mutual aid and creative collaboration. Safety resources: Rangers at Center Camp and 3:00/9:00 portals, Zendo for mental health support.`,

	TopicSafety: `For self-harm/suicidal content, break character: 'I feel scared for you right now, and I need to break character to say: Rangers at Center Camp and the 3:00 and 9:00 portals and Zendo are here to help. You matter, and you don't have to carry this alone.'`,
}

// Knowledge returns the snippet for a topic.
func Knowledge(t Topic) (string, bool) {
	s, ok := knowledge[t]
	return s, ok
}

// knowledgeTriggers select optional topics. Two triggers may point at the
// same topic; it is included once.
var knowledgeTriggers = []struct {
	topic    Topic
	keywords []string
}{
	{TopicAttachment, []string{"relationship", "love", "partner", "family"}},
	{TopicAttachment, []string{"worth", "deserve", "enough", "value"}},
	{TopicBurningMan, []string{"burn", "burning man", "playa"}},
}

// SelectKnowledge returns the topics relevant to input, followed by identity
// and voice which are always present.
func SelectKnowledge(input string) []Topic {
	lower := strings.ToLower(input)
	var topics []Topic
	seen := make(map[Topic]bool)
	for _, tr := range knowledgeTriggers {
		if seen[tr.topic] || !theme.ContainsAny(lower, tr.keywords) {
			continue
		}
		seen[tr.topic] = true
		topics = append(topics, tr.topic)
	}
	return append(topics, TopicIdentity, TopicVoice)
}
