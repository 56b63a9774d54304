package middlewares

import (
	"medconnect-service/internal/pkg/constvars"
	"medconnect-service/internal/pkg/exceptions"
	"medconnect-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles each client IP with a token bucket and blocks an IP
// for blockTime once its bucket runs dry. Clients idle for longer than
// idleAfter are forgotten.
type RateLimiter struct {
	clients   map[string]*clientLimiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	burst     int
	interval  time.Duration
	blockTime time.Duration
	idleAfter time.Duration
	lastSweep time.Time
	resource  string
	log       *zap.Logger
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows requests per window with the given burst.
func NewRateLimiter(requests int, per time.Duration, burst int, blockTime time.Duration, resource string, log *zap.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	interval := per
	if requests > 0 {
		interval = per / time.Duration(requests)
	}
	return &RateLimiter{
		clients:   make(map[string]*clientLimiter),
		blocked:   make(map[string]time.Time),
		burst:     burst,
		interval:  interval,
		blockTime: blockTime,
		// a bucket idle this long has refilled and equals a fresh one
		idleAfter: interval*time.Duration(burst) + blockTime,
		resource:  resource,
		log:       log,
		now:       time.Now,
	}
}

// sweep drops expired blocks and idle clients. It runs at most once per
// idleAfter and must be called with mu held.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleAfter {
		return
	}
	l.lastSweep = now
	for ip, blockedUntil := range l.blocked {
		if !now.Before(blockedUntil) {
			delete(l.blocked, ip)
		}
	}
	for ip, client := range l.clients {
		if now.Sub(client.lastSeen) >= l.idleAfter {
			delete(l.clients, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (l *RateLimiter) reject(w http.ResponseWriter, retryAfter time.Duration) {
	if retryAfter > 0 {
		w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
	}
	utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyRequests(nil, l.resource))
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		now := l.now()

		l.mu.Lock()
		l.sweep(now)
		if blockedUntil, found := l.blocked[ip]; found {
			if now.Before(blockedUntil) {
				l.mu.Unlock()
				l.reject(w, blockedUntil.Sub(now))
				return
			}
			delete(l.blocked, ip)
		}

		client, exists := l.clients[ip]
		if !exists {
			client = &clientLimiter{limiter: rate.NewLimiter(rate.Every(l.interval), l.burst)}
			l.clients[ip] = client
		}
		client.lastSeen = now

		if !client.limiter.AllowN(now, 1) {
			l.blocked[ip] = now.Add(l.blockTime)
			l.mu.Unlock()
			l.reject(w, l.blockTime)
			return
		}
		l.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
