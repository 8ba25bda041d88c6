package domain

import "strings"

// Mood is a tag from a closed vocabulary.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodSad        Mood = "sad"
	MoodExcited    Mood = "excited"
	MoodAnxious    Mood = "anxious"
	MoodPeaceful   Mood = "peaceful"
	MoodConfused   Mood = "confused"
	MoodGrateful   Mood = "grateful"
	MoodMotivated  Mood = "motivated"
	MoodTired      Mood = "tired"
	MoodReflective Mood = "reflective"
	MoodHopeful    Mood = "hopeful"

	// MoodNeutral means "no clear mood". It is never stored; callers treat it as zero moods.
	MoodNeutral Mood = "neutral"
)

// MaxDetectedMoods caps how many moods automated analysis may attach.
const MaxDetectedMoods = 3

// Moods lists the vocabulary in its canonical order.
var Moods = []Mood{
	MoodHappy,
	MoodSad,
	MoodExcited,
	MoodAnxious,
	MoodPeaceful,
	MoodConfused,
	MoodGrateful,
	MoodMotivated,
	MoodTired,
	MoodReflective,
	MoodHopeful,
}

// ParseMood normalizes s and reports whether it belongs to the vocabulary.
// "neutral" is not part of the vocabulary.
func ParseMood(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Moods {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// MoodList renders the vocabulary as "happy, sad, ...".
func MoodList() string {
	parts := make([]string, len(Moods))
	for i, m := range Moods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
