package lighting

import "strings"

// Color is the coarse palette bucket a cue maps to on the effect layer.
type Color string

const (
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGold  Color = "gold"
	ColorWhite Color = "white"
)

var colorRules = []struct {
	color    Color
	keywords []string
}{
	{ColorRed, []string{"red", "angry", "fire"}},
	{ColorBlue, []string{"blue", "sad", "dim"}},
	{ColorGold, []string{"gold", "warm", "gentle"}},
}

// Classify picks a palette bucket for a cue; the first matching rule wins.
func Classify(cue string) Color {
	lower := strings.ToLower(cue)
	for _, r := range colorRules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.color
			}
		}
	}
	return ColorWhite
}

// Cue is a single lighting directive ready for the effect layer.
type Cue struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Color Color  `json:"color"`
}

// Cues converts cue bodies into ordered, classified cues.
func Cues(texts []string) []Cue {
	out := make([]Cue, 0, len(texts))
	for i, t := range texts {
		out = append(out, Cue{Index: i, Text: strings.TrimSpace(t), Color: Classify(t)})
	}
	return out
}
