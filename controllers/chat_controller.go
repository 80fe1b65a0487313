package controllers

import (
	"net/http"
	"strings"

	"MoodaGo/config"
	"MoodaGo/models"
	"MoodaGo/repository"
	"MoodaGo/services"
	"MoodaGo/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chatService   *services.ChatService
	users         *repository.UserRepo
	messages      *repository.MessageRepo
	personalities *repository.PersonalityRepo
}

func NewChatController(chatService *services.ChatService, users *repository.UserRepo, messages *repository.MessageRepo, personalities *repository.PersonalityRepo) *ChatController {
	return &ChatController{
		chatService:   chatService,
		users:         users,
		messages:      messages,
		personalities: personalities,
	}
}

// SendMessage persists the user's message, streams the persona's reply and
// persists it once the stream ends.
func (cc *ChatController) SendMessage(ctx *gin.Context) {
	uid := ctx.GetString("uid")

	var req models.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	personality, err := cc.resolvePersonality(uid, req.PersonalityID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "personality not found"})
		return
	}

	if _, err := cc.messages.Append(uid, models.RoleUser, req.Message, personality.ID); err != nil {
		config.Logger.Errorw("failed to store user message", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store message"})
		return
	}

	historySummary := cc.chatService.HistorySummary(ctx, uid, personality.ID)

	// SSE stream
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	stream, err := cc.chatService.GenerateReply(ctx, personality, historySummary, req.Message)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat: " + err.Error()})
		return
	}

	var fullReply strings.Builder
	for chunk := range stream {
		if _, err := ctx.Writer.Write([]byte(chunk)); err != nil {
			config.Logger.Errorw("stream write failed", "error", err, "uid", uid)
			return
		}
		ctx.Writer.Flush()
		fullReply.WriteString(chunk)
	}

	if _, err := cc.messages.Append(uid, models.RoleAI, fullReply.String(), personality.ID); err != nil {
		config.Logger.Errorw("failed to store ai message", "error", err, "uid", uid)
	}

	cc.chatService.RefreshSummary(uid, personality.ID, req.Message, fullReply.String())
}

// GetMessages returns one KST day of the user's transcript.
func (cc *ChatController) GetMessages(ctx *gin.Context) {
	uid := ctx.GetString("uid")

	day := ctx.Query("date")
	if !utils.ValidDay(day) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	messages, err := cc.messages.ForDay(uid, day)
	if err != nil {
		config.Logger.Errorw("message fetch failed", "error", err, "uid", uid, "day", day)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "message fetch failed"})
		return
	}

	out := make([]models.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, models.MessageResponse{
			ID:            m.ID,
			Role:          m.Role,
			Content:       m.Content,
			PersonalityID: m.PersonalityID,
			CreatedAt:     m.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"data": out})
}

// resolvePersonality picks the request's persona, falling back to the
// user's selected one, then the default.
func (cc *ChatController) resolvePersonality(uid, requested string) (*models.Personality, error) {
	id := requested
	if id == "" {
		user, err := cc.users.FindByID(uid)
		if err != nil {
			return nil, err
		}
		id = user.SelectedPersonalityID
	}
	if id == "" {
		id = models.DefaultPersonalityID
	}
	return cc.personalities.FindByID(id)
}
