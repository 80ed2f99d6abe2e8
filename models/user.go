package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username           string         `gorm:"unique;not null" json:"username"`
	DisplayName        string         `json:"display_name"`
	District           string         `gorm:"index" json:"district"`
	Email              string         `gorm:"unique;not null" json:"email"`
	Password           string         `gorm:"not null" json:"-"` // Don't expose password in JSON
	Role               string         `gorm:"not null;default:'citizen'" json:"role"`
	Actions            []Action       `json:"actions,omitempty" gorm:"foreignKey:UserID"`
	AllowPublicProfile bool           `gorm:"default:false" json:"allow_public_profile"`
	TotalPoints        int64          `gorm:"default:0" json:"total_points"` // denormalized; credited when actions are verified
}
