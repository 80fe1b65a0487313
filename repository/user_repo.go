package repository

import (
	"time"

	"MoodaGo/models"
	"MoodaGo/utils"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ListAll returns every user ordered by id, so a batch run iterates in a
// reproducible order.
func (r *UserRepo) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreateByProvider resolves the user for an external identity,
// creating the row on first login.
func (r *UserRepo) FindOrCreateByProvider(provider, providerID, username, email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("provider = ? AND provider_id = ?", provider, providerID).First(&user).Error
	if err == nil {
		now := time.Now()
		user.LastLogin = &now
		if err := r.db.Model(&user).Update("last_login", now).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	now := time.Now()
	user = models.User{
		ID:                    utils.GenerateID(),
		Username:              username,
		Email:                 email,
		Provider:              provider,
		ProviderID:            providerID,
		SelectedPersonalityID: models.DefaultPersonalityID,
		CreatedAt:             now,
		LastLogin:             &now,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) SelectPersonality(userID, personalityID string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("selected_personality_id", personalityID).Error
}
