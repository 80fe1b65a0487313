package repository

import (
	"MoodaGo/models"

	"gorm.io/gorm"
)

type PersonalityRepo struct {
	db *gorm.DB
}

func NewPersonalityRepo(db *gorm.DB) *PersonalityRepo {
	return &PersonalityRepo{db: db}
}

// ListForUser returns the built-in personas plus the user's own.
func (r *PersonalityRepo) ListForUser(userID string) ([]models.Personality, error) {
	var personalities []models.Personality
	err := r.db.Where("user_id = ? OR user_id = ?", "", userID).
		Order("created_at asc").
		Find(&personalities).Error
	if err != nil {
		return nil, err
	}
	return personalities, nil
}

func (r *PersonalityRepo) FindByID(id string) (*models.Personality, error) {
	var p models.Personality
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonalityRepo) Create(p *models.Personality) error {
	return r.db.Create(p).Error
}

// Delete removes one of the user's own personas. Built-ins are not
// deletable because the filter requires a matching user_id.
func (r *PersonalityRepo) Delete(userID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Personality{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
