package theme

import (
	"encoding/json"
	"strings"
)

// MaxThemes bounds how many themes a session holds at once.
const MaxThemes = 5

// Set is an insertion-ordered, duplicate-free list of at most MaxThemes themes.
// Methods never mutate the receiver's backing array.
type Set struct {
	items []Theme
}

// NewSet builds a set by adding themes in order.
func NewSet(themes ...Theme) Set {
	var s Set
	return s.Add(themes...)
}

// Add returns a new set with the given themes appended. Themes already present
// keep their position; once the set exceeds MaxThemes the oldest are evicted.
func (s Set) Add(themes ...Theme) Set {
	items := append([]Theme(nil), s.items...)
	for _, t := range themes {
		if contains(items, t) {
			continue
		}
		items = append(items, t)
	}
	if len(items) > MaxThemes {
		items = items[len(items)-MaxThemes:]
	}
	return Set{items: items}
}

// Items returns a copy of the themes, oldest first.
func (s Set) Items() []Theme {
	return append([]Theme(nil), s.items...)
}

func (s Set) Len() int { return len(s.items) }

func (s Set) Contains(t Theme) bool { return contains(s.items, t) }

// String renders the set for prompts and status displays.
func (s Set) String() string {
	if len(s.items) == 0 {
		return "none yet"
	}
	parts := make([]string, len(s.items))
	for i, t := range s.items {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func (s Set) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var items []Theme
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}

func contains(items []Theme, t Theme) bool {
	for _, it := range items {
		if it == t {
			return true
		}
	}
	return false
}
