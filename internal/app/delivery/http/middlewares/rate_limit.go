package middlewares

import (
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit limits every client IP to APP_MAX_REQUESTS per second and
// answers with the JSON error envelope.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil, constvars.ResourceGlobal))
		}),
	)
}

// AssistantRateLimit throttles the assistant routes per client IP.
func (m *Middlewares) AssistantRateLimit() func(next http.Handler) http.Handler {
	cfg := m.InternalConfig.Assistant
	limiter := NewRateLimiter(cfg.RequestsPerMinute, time.Minute, cfg.Burst, cfg.BlockDuration, constvars.ResourceAssistant, m.Log)
	return limiter.Limit
}
