package repository

import (
	"MoodaGo/models"
	"MoodaGo/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmotionLogRepo struct {
	db *gorm.DB
}

func NewEmotionLogRepo(db *gorm.DB) *EmotionLogRepo {
	return &EmotionLogRepo{db: db}
}

// Upsert writes the daily log for (userID, day). The conflict clause rides
// on the (user_id, date) unique key, so concurrent runs cannot create a
// second row for the same day; a rerun overwrites the derived fields and
// keeps the original id.
func (r *EmotionLogRepo) Upsert(userID, day string, emotion models.Emotion, summary, shortSummary, highlight string) (*models.EmotionLog, error) {
	log := models.EmotionLog{
		ID:               utils.GenerateID(),
		UserID:           userID,
		Date:             day,
		Emotion:          emotion,
		Summary:          summary,
		ShortSummary:     shortSummary,
		Highlight:        highlight,
		CharacterIconRef: models.IconRef(emotion),
		MoodLabel:        models.MoodLabel(emotion),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"emotion", "summary", "short_summary", "highlight",
			"character_icon_ref", "mood_label", "updated_at",
		}),
	}).Create(&log).Error
	if err != nil {
		return nil, err
	}

	// Read back so the caller sees the surviving row (original id on update).
	var out models.EmotionLog
	if err := r.db.Where("user_id = ? AND date = ?", userID, day).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// ForDay returns the log for one day, or gorm.ErrRecordNotFound.
func (r *EmotionLogRepo) ForDay(userID, day string) (*models.EmotionLog, error) {
	var log models.EmotionLog
	if err := r.db.Where("user_id = ? AND date = ?", userID, day).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ForMonth returns all logs of a KST month ("2006-01") ordered by date.
// The caller validates the month format.
func (r *EmotionLogRepo) ForMonth(userID, month string) ([]models.EmotionLog, error) {
	var logs []models.EmotionLog
	err := r.db.Where("user_id = ? AND date LIKE ?", userID, month+"-%").
		Order("date asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
