package models

import "time"

// LoginResponse 로그인 응답
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MessageResponse 대화 메시지 응답
type MessageResponse struct {
	ID            string    `json:"id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	PersonalityID string    `json:"personalityId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EmotionLogResponse is a calendar/diary cell.
type EmotionLogResponse struct {
	Date             string  `json:"date"`
	Emotion          Emotion `json:"emotion"`
	Summary          string  `json:"summary"`
	ShortSummary     string  `json:"shortSummary"`
	Highlight        string  `json:"highlight"`
	CharacterIconRef string  `json:"characterIconRef"`
	MoodLabel        string  `json:"moodLabel"`
}

// CalendarResponse is one month of emotion logs.
type CalendarResponse struct {
	Month string               `json:"month"` // "2006-01"
	Logs  []EmotionLogResponse `json:"logs"`
}

// RunSummaryResponse reports a daily batch run to the operator.
type RunSummaryResponse struct {
	Success   bool   `json:"success"`
	Processed int    `json:"processed"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	Error     string `json:"error,omitempty"`
}

// ToResponse converts a stored log into its API shape.
func (l *EmotionLog) ToResponse() EmotionLogResponse {
	return EmotionLogResponse{
		Date:             l.Date,
		Emotion:          l.Emotion,
		Summary:          l.Summary,
		ShortSummary:     l.ShortSummary,
		Highlight:        l.Highlight,
		CharacterIconRef: l.CharacterIconRef,
		MoodLabel:        l.MoodLabel,
	}
}
