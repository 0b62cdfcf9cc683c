package theme

import "strings"

// Theme is a short tag for a recurring topic in visitor input.
type Theme string

const (
	Attachment Theme = "attachment"
	SelfWorth  Theme = "self_worth"
	Healing    Theme = "healing"
	Creativity Theme = "creativity"
	Community  Theme = "community"
)

// rule binds a theme to its trigger keywords. Matching is plain substring on
// lower-cased text, so "enough" also fires inside longer words.
type rule struct {
	theme    Theme
	keywords []string
}

var rules = []rule{
	{Attachment, []string{"love", "relationship", "partner", "dating", "family", "parent"}},
	{SelfWorth, []string{"enough", "worthy", "deserve", "value", "confidence"}},
	{Healing, []string{"healing", "therapy", "growth", "change", "better"}},
	{Creativity, []string{"art", "create", "making", "build", "express"}},
	{Community, []string{"friends", "people", "together", "alone", "connection"}},
}

// Vocabulary returns the fixed set of themes in table order.
func Vocabulary() []Theme {
	out := make([]Theme, len(rules))
	for i, r := range rules {
		out[i] = r.theme
	}
	return out
}

// Keywords returns the trigger keywords for t, or nil if t is not in the vocabulary.
func Keywords(t Theme) []string {
	for _, r := range rules {
		if r.theme == t {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}

// Extract returns every theme whose keywords appear in text, in table order.
func Extract(text string) []Theme {
	lower := strings.ToLower(text)
	var found []Theme
	for _, r := range rules {
		if ContainsAny(lower, r.keywords) {
			found = append(found, r.theme)
		}
	}
	return found
}

// ContainsAny reports whether any needle is a substring of haystack.
// Callers lower-case haystack first.
func ContainsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
