package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNotificationPreferences(t *testing.T) {
	owner := uuid.New()

	prefs := DefaultNotificationPreferences(owner)
	assert.Equal(t, owner, prefs.OwnerID)
	assert.True(t, prefs.EmailNotifications)
	assert.False(t, prefs.SMSNotifications)
	assert.True(t, prefs.WeatherAlerts)
	assert.True(t, prefs.IrrigationAlerts)
	assert.True(t, prefs.CropHealthAlerts)
}

func TestParsePreferenceField(t *testing.T) {
	known := []string{
		"email_notifications",
		"sms_notifications",
		"weather_alerts",
		"irrigation_alerts",
		"crop_health_alerts",
	}

	for _, name := range known {
		field, ok := ParsePreferenceField(name)
		require.True(t, ok, name)
		assert.Equal(t, PreferenceField(name), field)
	}

	_, ok := ParsePreferenceField("push_notifications")
	assert.False(t, ok)
}

func TestNotificationPreferences_GetSet(t *testing.T) {
	prefs := DefaultNotificationPreferences(uuid.New())

	for _, field := range []PreferenceField{
		PrefEmailNotifications,
		PrefSMSNotifications,
		PrefWeatherAlerts,
		PrefIrrigationAlerts,
		PrefCropHealthAlerts,
	} {
		prefs.Set(field, true)
		assert.True(t, prefs.Get(field), string(field))
		prefs.Set(field, false)
		assert.False(t, prefs.Get(field), string(field))
	}
}
