package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"MoodaGo/config"
	"MoodaGo/models"

	"github.com/go-redis/redis/v8"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// summaryTTL bounds how long a rolling conversation summary stays cached.
const summaryTTL = 72 * time.Hour

type ChatService struct {
	client *LLMClient
	redis  *redis.Client
	wg     sync.WaitGroup
}

func NewChatService(client *LLMClient, redisClient *redis.Client) *ChatService {
	return &ChatService{
		client: client,
		redis:  redisClient,
	}
}

func sessionKey(userID, personalityID string) string {
	return fmt.Sprintf("chat_summary:%s:%s", userID, personalityID)
}

// HistorySummary returns the cached rolling summary for the session, empty
// when none exists yet.
func (s *ChatService) HistorySummary(ctx context.Context, userID, personalityID string) string {
	summary, err := s.redis.Get(ctx, sessionKey(userID, personalityID)).Result()
	if err != nil {
		if err != redis.Nil {
			config.Logger.Errorw("failed to load history summary",
				"error", err,
				"userID", userID,
			)
		}
		return ""
	}
	return summary
}

// GenerateReply streams the personality's reply for one user message.
// Chunks arrive on the returned channel; it closes when the reply ends.
func (s *ChatService) GenerateReply(ctx context.Context, personality *models.Personality, historySummary, message string) (<-chan string, error) {
	config.Logger.Debugw("generating reply",
		"personality", personality.Name,
		"messageLength", len(message),
	)

	outputChan := make(chan string)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(outputChan)

		messages := []llms.MessageContent{
			{
				Role:  schema.ChatMessageTypeSystem,
				Parts: []llms.ContentPart{llms.TextPart(personality.SystemPrompt)},
			},
		}

		if historySummary != "" {
			messages = append(messages, llms.MessageContent{
				Role:  schema.ChatMessageTypeSystem,
				Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("이전 대화 요약 (참고용):\n%s", historySummary))},
			})
		}

		messages = append(messages, llms.MessageContent{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(message)},
		})

		options := []llms.CallOption{
			llms.WithTemperature(0.7),
			llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
				outputChan <- string(chunk)
				return nil
			}),
		}

		if _, err := s.client.Chat.GenerateContent(ctx, messages, options...); err != nil {
			config.Logger.Errorw("reply generation failed",
				"error", err,
				"personality", personality.Name,
			)
			outputChan <- "지금은 답장을 보낼 수 없어요. 잠시 후 다시 말 걸어 줄래요?"
			return
		}
	}()

	return outputChan, nil
}

// RefreshSummary folds the latest exchange into the cached rolling summary
// in the background.
func (s *ChatService) RefreshSummary(userID, personalityID, userMessage, aiReply string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		previous := s.HistorySummary(ctx, userID, personalityID)
		latest := fmt.Sprintf("user: %s\nai: %s", userMessage, aiReply)

		summary, err := s.generateSummary(ctx, latest, previous)
		if err != nil {
			config.Logger.Errorw("summary refresh failed",
				"error", err,
				"userID", userID,
			)
			return
		}

		if err := s.redis.Set(ctx, sessionKey(userID, personalityID), summary, summaryTTL).Err(); err != nil {
			config.Logger.Errorw("failed to cache history summary",
				"error", err,
				"userID", userID,
			)
		}
	}()
}

func (s *ChatService) generateSummary(ctx context.Context, latestDialogue, historySummary string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(`다음 규칙으로 대화 요약을 생성해:
1. 기존 요약과 최신 대화를 합쳐 100자 이내의 요약을 만들 것
2. 기존 요약은 "Historical summary:"로 시작함
3. 최신 대화는 "Latest dialogue:"로 시작함`)},
		},
	}

	if historySummary != "" {
		messages = append(messages, llms.MessageContent{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Historical summary: %s", historySummary))},
		})
	}

	messages = append(messages, llms.MessageContent{
		Role:  schema.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Latest dialogue: %s", latestDialogue))},
	})

	response, err := s.client.Chat.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no summary content generated")
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}

// Wait blocks until background work finishes; used during shutdown.
func (s *ChatService) Wait() {
	s.wg.Wait()
}
