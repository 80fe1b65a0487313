package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"MoodaGo/config"
	"MoodaGo/models"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

func init() {
	config.Logger = zap.NewNop().Sugar()
}

// fakeModel returns a canned response or error for every call.
type fakeModel struct {
	content string
	err     error
	calls   int
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.content}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func userMsg(content string) models.Message {
	return models.Message{Role: models.RoleUser, Content: content}
}

func aiMsg(content string) models.Message {
	return models.Message{Role: models.RoleAI, Content: content}
}

func TestRemoteTierParsesWrappedJSON(t *testing.T) {
	model := &fakeModel{content: "물론이죠! 결과입니다:\n```json\n{\"summary\": \"오늘은 산책을 했다.\", \"emotion\": \"Happy\", \"highlight\": \"산책\"}\n```"}
	c := NewEmotionClassifier(model, time.Second)

	got := c.Classify(context.Background(), []models.Message{userMsg("산책 다녀왔어")})
	if got.Emotion != models.EmotionHappy {
		t.Fatalf("emotion = %s, want Happy", got.Emotion)
	}
	if got.Summary != "오늘은 산책을 했다." {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
	if got.Highlight != "산책" {
		t.Fatalf("unexpected highlight: %q", got.Highlight)
	}
}

func TestRemoteTierUnknownEmotionBecomesNeutral(t *testing.T) {
	model := &fakeModel{content: `{"summary": "하루 기록", "emotion": "ecstatic", "highlight": "x"}`}
	c := NewEmotionClassifier(model, time.Second)

	got := c.Classify(context.Background(), []models.Message{userMsg("안녕")})
	if got.Emotion != models.EmotionNeutral {
		t.Fatalf("free-text emotion label must collapse to Neutral, got %s", got.Emotion)
	}
}

func TestRemoteFailureFallsThrough(t *testing.T) {
	for name, model := range map[string]*fakeModel{
		"network error":  {err: errors.New("connection refused")},
		"malformed json": {content: "{\"summary\": "},
		"no json at all": {content: "오늘 하루도 수고했어요!"},
	} {
		c := NewEmotionClassifier(model, time.Second)
		got := c.Classify(context.Background(), []models.Message{userMsg("오늘 정말 좋았어")})
		if got.Emotion != models.EmotionHappy {
			t.Fatalf("%s: fallback should classify 좋 as Happy, got %s", name, got.Emotion)
		}
	}
}

func TestFallbackKoreanExample(t *testing.T) {
	msgs := []models.Message{
		userMsg("오늘 정말 좋았어"),
		aiMsg("다행이네요"),
	}
	c := NewEmotionClassifier(nil, time.Second)

	got := c.Classify(context.Background(), msgs)
	if got.Emotion != models.EmotionHappy {
		t.Fatalf("emotion = %s, want Happy", got.Emotion)
	}
	if !strings.Contains(got.Summary, "오늘 정말 좋았어") {
		t.Fatalf("summary should derive from the last user line: %q", got.Summary)
	}
	if !strings.Contains(got.Highlight, "좋") {
		t.Fatalf("highlight should contain the matched keyword: %q", got.Highlight)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	msgs := []models.Message{
		userMsg("오늘 너무 힘들었어… 회사에서 짜증나는 일도 있었고"),
		aiMsg("고생 많았어요"),
		userMsg("그래도 저녁은 맛있었어"),
	}
	c := NewEmotionClassifier(nil, time.Second)

	first := c.Classify(context.Background(), msgs)
	for i := 0; i < 10; i++ {
		if got := c.Classify(context.Background(), msgs); !reflect.DeepEqual(got, first) {
			t.Fatalf("fallback not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestFallbackAllZeroScoresIsNeutral(t *testing.T) {
	c := NewEmotionClassifier(nil, time.Second)
	got := c.Classify(context.Background(), []models.Message{userMsg("음")})
	if got.Emotion != models.EmotionNeutral {
		t.Fatalf("zero keyword hits should yield Neutral, got %s", got.Emotion)
	}
	if got.Highlight != "" {
		t.Fatalf("no matches means no highlight, got %q", got.Highlight)
	}
}

func TestFallbackTieBreakUsesPriorityOrder(t *testing.T) {
	// One VeryHappy keyword and one Angry keyword: the tie resolves to the
	// emotion declared earlier in models.Emotions.
	c := NewEmotionClassifier(nil, time.Second)
	got := c.Classify(context.Background(), []models.Message{userMsg("행복했는데 짜증나는 일도 있었어")})
	if got.Emotion != models.EmotionVeryHappy {
		t.Fatalf("tie should resolve by declaration order, got %s", got.Emotion)
	}
}

func TestFallbackEnumClosure(t *testing.T) {
	inputs := []string{
		"", "오늘", "asdf qwer", "화나 화나 화나", "좋 슬퍼 최고 최악",
		strings.Repeat("눈물 ", 100),
	}
	valid := make(map[models.Emotion]bool, len(models.Emotions))
	for _, e := range models.Emotions {
		valid[e] = true
	}
	c := NewEmotionClassifier(nil, time.Second)
	for _, in := range inputs {
		got := c.Classify(context.Background(), []models.Message{userMsg(in)})
		if !valid[got.Emotion] {
			t.Fatalf("emotion %q outside the closed set for input %q", got.Emotion, in)
		}
	}
}

func TestFallbackSummaryTruncation(t *testing.T) {
	long := strings.Repeat("오늘 하루 ", 40)
	c := NewEmotionClassifier(nil, time.Second)
	got := c.Classify(context.Background(), []models.Message{userMsg(long)})
	runes := []rune(got.Summary)
	if len(runes) > shortSummaryLimit+1 {
		t.Fatalf("summary too long: %d runes", len(runes))
	}
	if runes[len(runes)-1] != '…' {
		t.Fatalf("truncated summary should end with an ellipsis: %q", got.Summary)
	}
}

func TestFallbackNoUserLinesUsesDefault(t *testing.T) {
	c := NewEmotionClassifier(nil, time.Second)
	got := c.Classify(context.Background(), []models.Message{aiMsg("안녕하세요!")})
	if got.Summary != fallbackSummaryDefault {
		t.Fatalf("summary = %q, want the fixed default", got.Summary)
	}
}

func TestFallbackUsesLastThreeUserLines(t *testing.T) {
	msgs := []models.Message{
		userMsg("첫마디"),
		userMsg("둘째"),
		aiMsg("네"),
		userMsg("셋째"),
		userMsg("넷째"),
	}
	c := NewEmotionClassifier(nil, time.Second)
	got := c.Classify(context.Background(), msgs)
	if strings.Contains(got.Summary, "첫마디") {
		t.Fatalf("summary should only use the last three user lines: %q", got.Summary)
	}
	for _, want := range []string{"둘째", "셋째", "넷째"} {
		if !strings.Contains(got.Summary, want) {
			t.Fatalf("summary missing %q: %q", want, got.Summary)
		}
	}
}

func TestExtractJSONBlock(t *testing.T) {
	cases := map[string]string{
		`{"a": 1}`:                          `{"a": 1}`,
		"prose before {\"a\": {\"b\": 2}} prose after": `{"a": {"b": 2}}`,
		"```json\n{\"a\": \"braces } in { string\"}\n```": `{"a": "braces } in { string"}`,
		"no object here":                    "",
		"{unclosed":                         "",
	}
	for in, want := range cases {
		if got := extractJSONBlock(in); got != want {
			t.Fatalf("extractJSONBlock(%q) = %q, want %q", in, got, want)
		}
	}
}
