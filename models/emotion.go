package models

import (
	"fmt"
	"math/rand"
	"strings"
)

// Emotion is the closed set of daily emotion categories.
type Emotion string

const (
	EmotionVeryHappy Emotion = "VeryHappy"
	EmotionHappy     Emotion = "Happy"
	EmotionNeutral   Emotion = "Neutral"
	EmotionSad       Emotion = "Sad"
	EmotionVerySad   Emotion = "VerySad"
	EmotionAngry     Emotion = "Angry"
)

// Emotions lists every category in priority order. The order is load-bearing:
// the fallback classifier breaks score ties by taking the earliest entry.
var Emotions = []Emotion{
	EmotionVeryHappy,
	EmotionHappy,
	EmotionNeutral,
	EmotionSad,
	EmotionVerySad,
	EmotionAngry,
}

var emotionAliases = map[string]Emotion{
	"veryhappy": EmotionVeryHappy,
	"happy":     EmotionHappy,
	"neutral":   EmotionNeutral,
	"soso":      EmotionNeutral,
	"sad":       EmotionSad,
	"verysad":   EmotionVerySad,
	"angry":     EmotionAngry,
	"mad":       EmotionAngry,
}

// NormalizeEmotion coerces a free-text label into the closed emotion set.
// Case, spaces, underscores and hyphens are ignored; anything unrecognized
// collapses to Neutral so an external payload can never widen the enum.
func NormalizeEmotion(raw string) Emotion {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	if e, ok := emotionAliases[key]; ok {
		return e
	}
	return EmotionNeutral
}

var emotionIcons = map[Emotion]string{
	EmotionVeryHappy: "/images/character/veryhappy.png",
	EmotionHappy:     "/images/character/happy.png",
	EmotionNeutral:   "/images/character/neutral.png",
	EmotionSad:       "/images/character/sad.png",
	EmotionVerySad:   "/images/character/verysad.png",
	EmotionAngry:     "/images/character/angry.png",
}

// IconRef maps an emotion to its character icon. Unknown spellings are
// normalized first, so the lookup is total.
func IconRef(e Emotion) string {
	if icon, ok := emotionIcons[e]; ok {
		return icon
	}
	return emotionIcons[EmotionNeutral]
}

// MoodLabel renders the emotion with a presentational percentage in
// [80, 95]. The number is cosmetic, not a confidence score.
func MoodLabel(e Emotion) string {
	return fmt.Sprintf("%s %d%%", string(e), 80+rand.Intn(16))
}
