package models

import (
	"time"
)

// User 사용자 모델
type User struct {
	ID                    string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username              string     `gorm:"type:varchar(100)" json:"username"`
	Email                 string     `gorm:"type:varchar(100)" json:"email"`
	Avatar                string     `gorm:"type:varchar(255)" json:"avatar"`
	Provider              string     `gorm:"type:varchar(50)" json:"provider"`
	ProviderID            string     `gorm:"type:varchar(50)" json:"providerId"`
	SelectedPersonalityID string     `gorm:"type:varchar(50)" json:"selectedPersonalityId"`
	CreatedAt             time.Time  `json:"createdAt"`
	LastLogin             *time.Time `json:"last_login,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
