package model

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceModel mirrors the 'notification_preferences' table. The unique
// UserID index enforces the one-row-per-user invariant at the store level.
type PreferenceModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	EmailNotifications bool      `gorm:"not null;default:true"`
	SMSNotifications   bool      `gorm:"column:sms_notifications;not null;default:false"`
	WeatherAlerts      bool      `gorm:"not null;default:true"`
	IrrigationAlerts   bool      `gorm:"not null;default:true"`
	CropHealthAlerts   bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "notification_preferences"
}
