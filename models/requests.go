package models

// DeviceLoginRequest exchanges a device/provider identity for a session
// token. OAuth code exchange against the identity provider happens outside
// this server.
type DeviceLoginRequest struct {
	Provider   string `json:"provider" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}

// ChatRequest 채팅 요청
type ChatRequest struct {
	Message       string `json:"message" binding:"required"`
	PersonalityID string `json:"personalityId"`
}

// CreatePersonalityRequest carries the MBTI wizard result.
type CreatePersonalityRequest struct {
	Name string `json:"name" binding:"required"`
	MBTI string `json:"mbti" binding:"required,len=4"`
	Tone string `json:"tone"`
}

// SelectPersonalityRequest switches the user's active persona.
type SelectPersonalityRequest struct {
	PersonalityID string `json:"personalityId" binding:"required"`
}

// RunSummaryRequest triggers the daily batch. Mode selects the target day.
type RunSummaryRequest struct {
	Mode string `json:"mode"` // "yesterday" (default) or "today"
}
