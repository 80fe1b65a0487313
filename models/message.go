package models

import "time"

// Message roles. Rows are append-only and ordered by CreatedAt.
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

type Message struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(50);index:idx_messages_user_created" json:"userId"`
	Role          string    `gorm:"type:varchar(10)" json:"role"`
	Content       string    `gorm:"type:text" json:"content"`
	PersonalityID string    `gorm:"type:varchar(50)" json:"personalityId"`
	CreatedAt     time.Time `gorm:"index:idx_messages_user_created" json:"createdAt"`
}

func (Message) TableName() string {
	return "conversation_messages"
}
