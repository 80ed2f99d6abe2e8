package models

import (
	"time"

	"github.com/lib/pq"
)

// Action is one logged environmental action. Immutable once created except
// for its verification level, which a privileged verifier moves forward.
type Action struct {
	ID                uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID            uint              `json:"user_id" gorm:"not null;index"`
	User              User              `json:"-" gorm:"foreignKey:UserID"`
	ActionType        string            `json:"action_type" gorm:"not null;type:varchar(50)"` // enumerated value or the user's custom text, never the literal "other"
	Description       *string           `json:"description" gorm:"type:varchar(200)"`
	VideoURL          string            `json:"video_url" gorm:"not null"`
	PhotoURLs         pq.StringArray    `json:"photo_urls" gorm:"type:text[]"` // nil when no photos were attached
	GpsLat            float64           `json:"gps_lat" gorm:"not null;type:decimal(10,8)"`
	GpsLng            float64           `json:"gps_lng" gorm:"not null;type:decimal(11,8)"`
	RecordedAt        time.Time         `json:"recorded_at" gorm:"not null"` // when the user says the action happened, not when the row was written
	PrivacySetting    string            `json:"privacy_setting" gorm:"not null;type:varchar(20);default:'anonymous'"`
	VerificationLevel VerificationLevel `json:"verification_level" gorm:"not null;type:varchar(20);default:'pending'"`
	Points            int               `json:"points" gorm:"not null;default:0"`
	CreatedAt         time.Time         `json:"created_at"`
}
