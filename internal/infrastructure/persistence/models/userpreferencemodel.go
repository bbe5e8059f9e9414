package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserPreferenceModel is the GORM model for the user_preferences table
type UserPreferenceModel struct {
	IdentityToken string         `gorm:"column:identity_token;type:varchar(191);primaryKey"`
	Document      datatypes.JSON `gorm:"column:document;not null"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;not null"`
}

// TableName returns the table name for GORM
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
