package repository

import (
	"time"

	"MoodaGo/models"
	"MoodaGo/utils"

	"gorm.io/gorm"
)

// MessageRepo reads and appends conversation rows. Day queries use the KST
// half-open window converted to UTC; naive server-local midnights are the
// bug this file exists to prevent.
type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// ForDay returns the user's messages for one KST calendar day, ordered by
// creation time ascending.
func (r *MessageRepo) ForDay(userID, day string) ([]models.Message, error) {
	start, end, err := utils.DayBounds(day)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	err = r.db.Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Append stores one chat message and returns the persisted row.
func (r *MessageRepo) Append(userID, role, content, personalityID string) (*models.Message, error) {
	msg := models.Message{
		ID:            utils.GenerateID(),
		UserID:        userID,
		Role:          role,
		Content:       content,
		PersonalityID: personalityID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
