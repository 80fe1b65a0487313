package models

import (
	"strconv"
	"strings"
	"testing"
)

func TestNormalizeEmotion(t *testing.T) {
	cases := map[string]Emotion{
		"VeryHappy":  EmotionVeryHappy,
		"veryhappy":  EmotionVeryHappy,
		"very happy": EmotionVeryHappy,
		"very_sad":   EmotionVerySad,
		"HAPPY":      EmotionHappy,
		"angry":      EmotionAngry,
		"mad":        EmotionAngry,
		"soso":       EmotionNeutral,
		"joyful":     EmotionNeutral, // unknown labels collapse to Neutral
		"":           EmotionNeutral,
	}
	for raw, want := range cases {
		if got := NormalizeEmotion(raw); got != want {
			t.Fatalf("NormalizeEmotion(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestIconRefTotal(t *testing.T) {
	for _, e := range Emotions {
		if IconRef(e) == "" {
			t.Fatalf("no icon for %s", e)
		}
	}
	// Unmapped values fall back to the Neutral icon.
	if IconRef(Emotion("whatever")) != IconRef(EmotionNeutral) {
		t.Fatalf("unmapped emotion should use the Neutral icon")
	}
}

func TestMoodLabel(t *testing.T) {
	// The percentage is cosmetic noise: assert the label and the range only.
	for i := 0; i < 50; i++ {
		label := MoodLabel(EmotionHappy)
		if !strings.HasPrefix(label, "Happy ") || !strings.HasSuffix(label, "%") {
			t.Fatalf("unexpected label shape: %q", label)
		}
		pct, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(label, "Happy "), "%"))
		if err != nil {
			t.Fatalf("unparsable percentage in %q: %v", label, err)
		}
		if pct < 80 || pct > 95 {
			t.Fatalf("percentage %d out of [80, 95]", pct)
		}
	}
}
