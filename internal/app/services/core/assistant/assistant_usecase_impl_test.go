package assistant

import (
	"context"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/app/contracts"
	"medconnect-service/internal/app/services/shared/clock"
	"medconnect-service/internal/app/services/shared/media"
	"medconnect-service/internal/app/services/shared/ratelimiter"
	"medconnect-service/internal/app/services/shared/redis"
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2024, time.January, 15, 14, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T, mediaConfig config.AppMedia, quota int) (*miniredis.Miniredis, contracts.AssistantUsecase) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	redisRepository := redis.NewRedisRepository(client)

	uc := NewAssistantUsecase(
		NewConversationRedisRepository(redisRepository),
		media.NewStaticCapabilityProvider(mediaConfig),
		ratelimiter.NewResourceLimiter(redisRepository, zap.NewNop()),
		clock.Fixed(now),
		nil,
		config.AppAssistant{ConversationMessagesPerMinute: quota},
		zap.NewNop(),
	)
	return mr, uc
}

func requireStatus(t *testing.T, err error, status int) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, status, customErr.StatusCode)
	return customErr
}

func TestReply(t *testing.T) {
	reply := Reply("headache")
	assert.True(t, strings.HasPrefix(reply, "Based on your symptoms \"headache\", here are some general suggestions:\n\n• Rest and stay hydrated\n"))
	assert.True(t, strings.HasSuffix(reply, "\n\nIf symptoms persist or worsen, please consult a healthcare professional immediately."))
	assert.Equal(t, 4, strings.Count(reply, "• "))
}

func TestStartConversation(t *testing.T) {
	mr, uc := newTestUsecase(t, config.AppMedia{}, 10)

	conversation, err := uc.StartConversation(context.Background())
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, "assistant", conversation.Messages[0].Role)
	assert.Equal(t, greeting, conversation.Messages[0].Content)

	key := constvars.RedisKeyConversationPrefix + conversation.ID
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 24*time.Hour, mr.TTL(key))
}

func TestSendMessage(t *testing.T) {
	_, uc := newTestUsecase(t, config.AppMedia{}, 10)
	ctx := context.Background()

	started, err := uc.StartConversation(ctx)
	require.NoError(t, err)

	conversation, err := uc.SendMessage(ctx, started.ID, "  sore throat and fever  ")
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 3)
	assert.Equal(t, "user", conversation.Messages[1].Role)
	assert.Equal(t, "sore throat and fever", conversation.Messages[1].Content)
	assert.Equal(t, Reply("sore throat and fever"), conversation.Messages[2].Content)

	stored, err := uc.GetConversation(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, conversation.Messages, stored.Messages)
}

func TestSendMessageErrors(t *testing.T) {
	_, uc := newTestUsecase(t, config.AppMedia{}, 2)
	ctx := context.Background()

	started, err := uc.StartConversation(ctx)
	require.NoError(t, err)

	t.Run("blank message", func(t *testing.T) {
		_, err := uc.SendMessage(ctx, started.ID, "   ")
		requireStatus(t, err, constvars.StatusBadRequest)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := uc.SendMessage(ctx, started.ID, strings.Repeat("a", 2001))
		requireStatus(t, err, constvars.StatusBadRequest)
	})

	t.Run("unknown conversation", func(t *testing.T) {
		_, err := uc.SendMessage(ctx, "missing", "cough")
		requireStatus(t, err, constvars.StatusNotFound)

		_, err = uc.GetConversation(ctx, "missing")
		requireStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("per conversation quota", func(t *testing.T) {
		_, err := uc.SendMessage(ctx, started.ID, "cough")
		require.NoError(t, err)
		_, err = uc.SendMessage(ctx, started.ID, "cough")
		require.NoError(t, err)
		_, err = uc.SendMessage(ctx, started.ID, "cough")
		requireStatus(t, err, constvars.StatusTooManyRequests)
	})
}

func TestStartVoiceInput(t *testing.T) {
	ctx := context.Background()

	t.Run("available", func(t *testing.T) {
		_, uc := newTestUsecase(t, config.AppMedia{SpeechRecognition: "available"}, 10)
		voice, err := uc.StartVoiceInput(ctx)
		require.NoError(t, err)
		assert.True(t, voice.Listening)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, uc := newTestUsecase(t, config.AppMedia{}, 10)
		_, err := uc.StartVoiceInput(ctx)
		customErr := requireStatus(t, err, constvars.StatusNotImplemented)
		require.NotNil(t, customErr.Notice)
		assert.Equal(t, "Not Supported", customErr.Notice.Title)
		assert.Equal(t, "Voice recognition is not supported in your browser.", customErr.Notice.Description)
	})

	t.Run("permission denied", func(t *testing.T) {
		_, uc := newTestUsecase(t, config.AppMedia{SpeechRecognition: "permission_denied"}, 10)
		_, err := uc.StartVoiceInput(ctx)
		requireStatus(t, err, constvars.StatusForbidden)
	})
}
