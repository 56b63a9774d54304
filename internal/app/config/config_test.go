package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	t.Setenv("CALENDAR_HORIZON_DAYS", "")
	t.Setenv("CATALOG_SOURCE", "")

	cfg := NewInternalConfig()

	assert.Equal(t, 14, cfg.Calendar.HorizonDays)
	assert.Equal(t, time.Sunday, cfg.Calendar.ExcludedWeekday)
	assert.Equal(t, "@daily", cfg.Calendar.WorkerCronSpec)
	assert.Equal(t, "static", cfg.Catalog.Source)
	assert.Equal(t, 2, cfg.Minio.ProfilePictureMaxUploadSizeInMB)
}

func TestNewInternalConfigOverrides(t *testing.T) {
	t.Setenv("CALENDAR_HORIZON_DAYS", "21")
	t.Setenv("CALENDAR_EXCLUDED_WEEKDAY", "6")
	t.Setenv("APP_SIMULATED_LATENCY_MS", "1500")
	t.Setenv("CONSULTATION_JOIN_TOKEN_TTL", "45m")
	t.Setenv("APP_MAX_REQUESTS", "not-a-number")

	cfg := NewInternalConfig()

	assert.Equal(t, 21, cfg.Calendar.HorizonDays)
	assert.Equal(t, time.Saturday, cfg.Calendar.ExcludedWeekday)
	assert.Equal(t, 1500*time.Millisecond, cfg.App.SimulatedLatency)
	assert.Equal(t, 45*time.Minute, cfg.Consultation.JoinTokenTTL)
	assert.Equal(t, 20, cfg.App.MaxRequests, "unparsable values fall back to the default")
}
