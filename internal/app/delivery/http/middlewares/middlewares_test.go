package middlewares

import (
	"fmt"
	"io"
	"medconnect-service/internal/app/config"
	"medconnect-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{MaxRequests: 2, RequestBodyLimitInMegabyte: 1},
		Assistant: config.AppAssistant{
			RequestsPerMinute: 60,
			Burst:             2,
			BlockDuration:     time.Minute,
		},
	}, nil)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	var fromClient bool
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.False(t, fromClient)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, "client-id", seen)
		assert.True(t, fromClient)
	})
}

func TestLoggingPassesStatusThrough(t *testing.T) {
	m := newTestMiddlewares()
	rec := httptest.NewRecorder()
	m.Logging(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	big := strings.NewReader(strings.Repeat("a", 2*1024*1024))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", big))
	assert.Error(t, readErr)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.NoError(t, readErr)
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	now := time.Date(2024, time.January, 15, 14, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(60, time.Minute, 2, time.Minute, constvars.ResourceAssistant, zap.NewNop())
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(okHandler)

	serve := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:1001").Code)

	blocked := serve("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, serve("10.0.0.2:1000").Code)

	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:1003").Code)

	now = now.Add(31 * time.Second)
	assert.Equal(t, http.StatusNoContent, serve("10.0.0.1:1004").Code)
}

func trackedClients(l *RateLimiter) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients) + len(l.blocked)
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	now := time.Date(2024, time.January, 15, 14, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(60, time.Minute, 2, time.Minute, constvars.ResourceAssistant, zap.NewNop())
	limiter.now = func() time.Time { return now }
	handler := limiter.Limit(okHandler)

	serve := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 1; i <= 50; i++ {
		assert.Equal(t, http.StatusNoContent, serve(fmt.Sprintf("10.0.1.%d:1000", i)))
	}
	serve("10.0.2.1:1000")
	serve("10.0.2.1:1001")
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.2.1:1002"))
	assert.Equal(t, 52, trackedClients(limiter), "51 buckets plus one block")

	now = now.Add(limiter.idleAfter)
	assert.Equal(t, http.StatusNoContent, serve("10.0.3.1:1000"))
	assert.Equal(t, 1, trackedClients(limiter), "only the client seen after the sweep is kept")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, serve("10.0.2.1:1003"), "an evicted client starts with a full bucket")
}

func TestGlobalRateLimit(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.GlobalRateLimit()(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}
