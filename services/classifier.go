package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"MoodaGo/config"
	"MoodaGo/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// DailyAnalysis is the classifier output for one user-day.
type DailyAnalysis struct {
	Emotion      models.Emotion
	Summary      string
	ShortSummary string
	Highlight    string
}

// EmotionClassifier derives a daily emotion from a conversation transcript.
// It prefers the remote model and degrades to deterministic keyword scoring
// on any remote failure, so classification itself never fails a batch user.
type EmotionClassifier struct {
	llm     llms.Model
	timeout time.Duration
}

// NewEmotionClassifier builds a classifier. A nil model disables the remote
// tier entirely (useful in tests and offline runs).
func NewEmotionClassifier(llm llms.Model, timeout time.Duration) *EmotionClassifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EmotionClassifier{llm: llm, timeout: timeout}
}

const classifyPrompt = `아래는 사용자가 AI 친구와 나눈 하루치 대화야. 이 대화를 바탕으로 사용자의 하루를 정리해 줘.

반드시 아래 세 필드만 가진 JSON 객체 하나로 답해:
- "summary": 사용자가 직접 자기 하루를 일기처럼 말하는 1~2문장. AI, 대화, 추천받은 내용은 절대 언급하지 마.
- "emotion": 다음 여섯 값 중 정확히 하나: VeryHappy, Happy, Neutral, Sad, VerySad, Angry
- "highlight": 하루 중 가장 기억에 남는 한 조각

JSON 외의 다른 텍스트는 출력하지 마.`

type remoteAnalysis struct {
	Summary   string `json:"summary"`
	Emotion   string `json:"emotion"`
	Highlight string `json:"highlight"`
}

// Classify runs the two-tier strategy. The caller must not pass an empty
// transcript; the orchestrator skips those days before getting here.
func (c *EmotionClassifier) Classify(ctx context.Context, messages []models.Message) DailyAnalysis {
	if c.llm != nil {
		if analysis, err := c.classifyRemote(ctx, messages); err == nil {
			return analysis
		} else if config.Logger != nil {
			config.Logger.Infow("remote classification failed, using fallback", "error", err)
		}
	}
	return c.classifyFallback(messages)
}

func (c *EmotionClassifier) classifyRemote(ctx context.Context, messages []models.Message) (DailyAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(classifyPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(formatTranscript(messages))},
		},
	}

	resp, err := c.llm.GenerateContent(ctx, content, llms.WithTemperature(0.3))
	if err != nil {
		return DailyAnalysis{}, fmt.Errorf("completion call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return DailyAnalysis{}, fmt.Errorf("empty completion response")
	}

	block := extractJSONBlock(resp.Choices[0].Content)
	if block == "" {
		return DailyAnalysis{}, fmt.Errorf("no JSON object in response")
	}

	var remote remoteAnalysis
	if err := json.Unmarshal([]byte(block), &remote); err != nil {
		return DailyAnalysis{}, fmt.Errorf("malformed JSON in response: %w", err)
	}
	if strings.TrimSpace(remote.Summary) == "" {
		return DailyAnalysis{}, fmt.Errorf("response missing summary")
	}

	summary := strings.TrimSpace(remote.Summary)
	return DailyAnalysis{
		Emotion:      models.NormalizeEmotion(remote.Emotion),
		Summary:      summary,
		ShortSummary: truncateRunes(summary, shortSummaryLimit),
		Highlight:    strings.TrimSpace(remote.Highlight),
	}, nil
}

const shortSummaryLimit = 80

// classifyFallback is the deterministic local tier: same transcript in,
// same analysis out, no network.
func (c *EmotionClassifier) classifyFallback(messages []models.Message) DailyAnalysis {
	text := normalizeText(messages)

	scores := make(map[models.Emotion]int, len(models.Emotions))
	for emotion, keywords := range emotionKeywords {
		for _, kw := range keywords {
			scores[emotion] += strings.Count(text, kw)
		}
	}

	best := models.EmotionNeutral
	bestScore := 0
	for _, emotion := range models.Emotions {
		if scores[emotion] > bestScore {
			best = emotion
			bestScore = scores[emotion]
		}
	}

	summary := lastUserLines(messages, 3)
	if summary == "" {
		summary = fallbackSummaryDefault
	}
	summary = truncateRunes(summary, shortSummaryLimit)

	return DailyAnalysis{
		Emotion:      best,
		Summary:      summary,
		ShortSummary: summary,
		Highlight:    matchedKeywords(text, best),
	}
}

func normalizeText(messages []models.Message) string {
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return strings.ToLower(sb.String())
}

// lastUserLines joins the last n user-authored messages in original order.
func lastUserLines(messages []models.Message, n int) string {
	var lines []string
	for i := len(messages) - 1; i >= 0 && len(lines) < n; i-- {
		if messages[i].Role == models.RoleUser {
			content := strings.TrimSpace(messages[i].Content)
			if content != "" {
				lines = append([]string{content}, lines...)
			}
		}
	}
	return strings.Join(lines, " ")
}

// matchedKeywords returns the winning emotion's keywords present in the
// text, joined for display.
func matchedKeywords(text string, emotion models.Emotion) string {
	var matched []string
	for _, kw := range emotionKeywords[emotion] {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return strings.Join(matched, ", ")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

func formatTranscript(messages []models.Message) string {
	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

// extractJSONBlock returns the first balanced {...} block in s. The model
// may wrap its JSON in commentary or code fences, so brace depth is tracked
// while skipping string literals.
func extractJSONBlock(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
