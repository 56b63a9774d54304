package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequestID(t *testing.T) {
	first, second := GenerateRequestID(), GenerateRequestID()

	assert.True(t, strings.HasPrefix(first, "MDCN_SVC_"))
	assert.NotEqual(t, first, second)
}

func TestConsultationJoinToken(t *testing.T) {
	now := time.Now()
	token, err := GenerateConsultationJoinToken("1", "secret", now, time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseConsultationJoinToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "1", sessionID)

	_, err = ParseConsultationJoinToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateConsultationJoinToken("1", "secret", now.Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = ParseConsultationJoinToken(expired, "secret")
	assert.Error(t, err)
}

func TestGenerateFileName(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "avatar_PT001234_20240115_143000.000000000.png", GenerateFileName("avatar", "PT001234", "Me.PNG", now))
}
