package utils

import (
	"errors"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	t.Run("custom error keeps status and notice", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvProduction)
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrBookingConsentRequired(nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientConsentRequired, body["message"])
		assert.NotContains(t, body, "dev_message")
		notice := body["notice"].(map[string]interface{})
		assert.Equal(t, "Consent Required", notice["title"])
		assert.Equal(t, constvars.NoticeVariantDestructive, notice["variant"])
	})

	t.Run("dev details outside production", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvDevelopment)
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrDoctorNotFound(nil, "42"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "doctor 42 not found in catalog")
		assert.Contains(t, rec.Body.String(), "locations")
	})

	t.Run("plain error is internal", func(t *testing.T) {
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
	})
}

func TestBuildSuccessResponseWithNotice(t *testing.T) {
	rec := httptest.NewRecorder()

	BuildSuccessResponseWithNotice(rec, http.StatusCreated, constvars.SuccessBookAppointment,
		BuildNotice(constvars.NoticeTitleAppointmentBooked, constvars.NoticeDescAppointmentBooked), map[string]string{"id": "x"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "Appointment Booked!")
}
