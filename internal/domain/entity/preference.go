package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferences holds the per-user alert toggles. Exactly one row
// exists per user once the user has visited the settings screen; the row is
// created with defaults on first read.
type NotificationPreferences struct {
	ID                 uuid.UUID `json:"id"`                  // The Global Unique Identifier (GUID) for the row, server-assigned.
	OwnerID            uuid.UUID `json:"owner_id"`            // The ID of the owning user, one-to-one.
	EmailNotifications bool      `json:"email_notifications"` // Updates and alerts via email.
	SMSNotifications   bool      `json:"sms_notifications"`   // Critical alerts via SMS.
	WeatherAlerts      bool      `json:"weather_alerts"`      // Severe weather warnings.
	IrrigationAlerts   bool      `json:"irrigation_alerts"`   // Irrigation schedule reminders.
	CropHealthAlerts   bool      `json:"crop_health_alerts"`  // Pest and disease warnings.
	CreatedAt          time.Time `json:"created_at"`          // Timestamp of when this record was created.
	UpdatedAt          time.Time `json:"updated_at"`          // Timestamp of the last modification.
}

// DefaultNotificationPreferences returns the row inserted on first read:
// everything enabled except SMS.
func DefaultNotificationPreferences(owner uuid.UUID) *NotificationPreferences {
	return &NotificationPreferences{
		OwnerID:            owner,
		EmailNotifications: true,
		SMSNotifications:   false,
		WeatherAlerts:      true,
		IrrigationAlerts:   true,
		CropHealthAlerts:   true,
	}
}

// PreferenceField names a single toggle within NotificationPreferences.
// Single-field updates are scoped to one of these; anything else is rejected
// before reaching the store.
type PreferenceField string

// The toggle fields of a NotificationPreferences row.
const (
	PrefEmailNotifications PreferenceField = "email_notifications"
	PrefSMSNotifications   PreferenceField = "sms_notifications"
	PrefWeatherAlerts      PreferenceField = "weather_alerts"
	PrefIrrigationAlerts   PreferenceField = "irrigation_alerts"
	PrefCropHealthAlerts   PreferenceField = "crop_health_alerts"
)

// ParsePreferenceField converts external input into a known field name.
func ParsePreferenceField(name string) (PreferenceField, bool) {
	switch field := PreferenceField(name); field {
	case PrefEmailNotifications, PrefSMSNotifications, PrefWeatherAlerts, PrefIrrigationAlerts, PrefCropHealthAlerts:
		return field, true
	default:
		return "", false
	}
}

// Get returns the current value of the field on p.
func (p *NotificationPreferences) Get(field PreferenceField) bool {
	switch field {
	case PrefEmailNotifications:
		return p.EmailNotifications
	case PrefSMSNotifications:
		return p.SMSNotifications
	case PrefWeatherAlerts:
		return p.WeatherAlerts
	case PrefIrrigationAlerts:
		return p.IrrigationAlerts
	case PrefCropHealthAlerts:
		return p.CropHealthAlerts
	default:
		return false
	}
}

// Set assigns value to the field on p.
func (p *NotificationPreferences) Set(field PreferenceField, value bool) {
	switch field {
	case PrefEmailNotifications:
		p.EmailNotifications = value
	case PrefSMSNotifications:
		p.SMSNotifications = value
	case PrefWeatherAlerts:
		p.WeatherAlerts = value
	case PrefIrrigationAlerts:
		p.IrrigationAlerts = value
	case PrefCropHealthAlerts:
		p.CropHealthAlerts = value
	}
}
