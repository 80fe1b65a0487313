package models

import "time"

// EmotionLog is the one-per-(user, day) daily summary record. Date is a
// KST calendar-day string so the invariant is the composite unique key.
type EmotionLog struct {
	ID               string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID           string    `gorm:"type:varchar(50);uniqueIndex:uidx_emotion_user_date" json:"userId"`
	Date             string    `gorm:"type:varchar(10);uniqueIndex:uidx_emotion_user_date" json:"date"`
	Emotion          Emotion   `gorm:"type:varchar(20)" json:"emotion"`
	Summary          string    `gorm:"type:text" json:"summary"`
	ShortSummary     string    `gorm:"type:varchar(255)" json:"shortSummary"`
	Highlight        string    `gorm:"type:varchar(255)" json:"highlight"`
	CharacterIconRef string    `gorm:"type:varchar(255)" json:"characterIconRef"`
	MoodLabel        string    `gorm:"type:varchar(50)" json:"moodLabel"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (EmotionLog) TableName() string {
	return "emotion_logs"
}
