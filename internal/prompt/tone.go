package prompt

import (
	"strings"

	"github.com/MikeSquared-Agency/heartmind/internal/theme"
)

// Tone is a coarse emotional reading of the visitor's words.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneSad      Tone = "sad"
	ToneAngry    Tone = "angry"
	ToneHappy    Tone = "happy"
	ToneConfused Tone = "confused"
)

// toneRules are evaluated in order; the first match wins.
var toneRules = []struct {
	tone     Tone
	keywords []string
}{
	{ToneSad, []string{"sad", "lonely", "hurt", "cry", "depressed"}},
	{ToneAngry, []string{"angry", "mad", "pissed", "furious"}},
	{ToneHappy, []string{"happy", "amazing", "love", "excited", "wonderful"}},
	{ToneConfused, []string{"lost", "confused", "don't know"}},
}

// DetectTone returns the first tone whose keywords appear in text, or neutral.
func DetectTone(text string) Tone {
	lower := strings.ToLower(text)
	for _, r := range toneRules {
		if theme.ContainsAny(lower, r.keywords) {
			return r.tone
		}
	}
	return ToneNeutral
}
