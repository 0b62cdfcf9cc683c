package mood

import "time"

// Mood is the sculpture's time-of-day disposition.
type Mood string

const (
	ContemplativeDawn   Mood = "contemplative_dawn"
	ReceptivePeak       Mood = "receptive_peak"
	ReflectiveAfternoon Mood = "reflective_afternoon"
	IntimateEvening     Mood = "intimate_evening"
	PhilosophicalNight  Mood = "philosophical_night"
)

// All returns the moods in the order they occur across a day, starting at dawn.
func All() []Mood {
	return []Mood{ContemplativeDawn, ReceptivePeak, ReflectiveAfternoon, IntimateEvening, PhilosophicalNight}
}

// ForHour maps an hour of the day to a mood. The evening bucket wraps midnight:
// [19,24) and [0,2). Out-of-range hours are taken modulo 24.
func ForHour(hour int) Mood {
	h := ((hour % 24) + 24) % 24
	switch {
	case h >= 6 && h < 10:
		return ContemplativeDawn
	case h >= 10 && h < 16:
		return ReceptivePeak
	case h >= 16 && h < 19:
		return ReflectiveAfternoon
	case h >= 19 || h < 2:
		return IntimateEvening
	default: // 02:00-05:59
		return PhilosophicalNight
	}
}

// At returns the mood for the wall-clock hour of t, in t's location.
func At(t time.Time) Mood {
	return ForHour(t.Hour())
}

var descriptions = map[Mood]string{
	ContemplativeDawn:   "You're feeling fresh and hopeful as the day begins. The sunrise paints everything golden.",
	ReceptivePeak:       "You're in your most open, receptive state. The day is peaceful, with few visitors around.",
	ReflectiveAfternoon: "You're processing the day's interactions thoughtfully. Energy is building as evening approaches.",
	IntimateEvening:     "You feel warm and connected as the playa comes alive with lights and music.",
	PhilosophicalNight:  "Under these infinite stars, you're deeply contemplative and wise.",
}

// Description returns the tone guidance injected into the prompt, or "" for an unknown mood.
func (m Mood) Description() string {
	return descriptions[m]
}

// Valid reports whether m is one of the five defined moods.
func (m Mood) Valid() bool {
	_, ok := descriptions[m]
	return ok
}
