package lighting

import (
	"regexp"
	"strings"
)

// Delimiter marks the start and end of a cue inside model output.
const Delimiter = '*'

var cuePattern = regexp.MustCompile(`\*(.*?)\*`)

// Segment is one piece of a response: either plain text or a cue body.
type Segment struct {
	Text string `json:"text"`
	Cue  bool   `json:"cue"`
}

// Response is a model reply split into display text and cues.
type Response struct {
	Raw      string    `json:"-"`
	Display  string    `json:"display"`
	Cues     []string  `json:"cues"`
	Segments []Segment `json:"-"`
}

// Parse extracts every *delimited* cue (non-greedy) and returns the reply with
// cues removed and surrounding whitespace trimmed. An unmatched delimiter is
// left in the display text.
func Parse(text string) Response {
	resp := Response{Raw: text, Cues: []string{}}

	var display strings.Builder
	last := 0
	for _, m := range cuePattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			plain := text[last:m[0]]
			resp.Segments = append(resp.Segments, Segment{Text: plain})
			display.WriteString(plain)
		}
		cue := text[m[2]:m[3]]
		resp.Segments = append(resp.Segments, Segment{Text: cue, Cue: true})
		resp.Cues = append(resp.Cues, cue)
		last = m[1]
	}
	if last < len(text) {
		plain := text[last:]
		resp.Segments = append(resp.Segments, Segment{Text: plain})
		display.WriteString(plain)
	}

	resp.Display = strings.TrimSpace(display.String())
	return resp
}

// Reassemble rebuilds the original reply from its segments, re-wrapping cues
// in the delimiter.
func Reassemble(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Cue {
			b.WriteRune(Delimiter)
			b.WriteString(s.Text)
			b.WriteRune(Delimiter)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
