package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// clientIdleTTL через сколько без запросов ограничитель клиента удаляется
const clientIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов отдельно для каждого клиента.
// Клиент определяется по X-User-ID, для анонимных запросов - по IP.
// Ограничители клиентов, не приходивших дольше clientIdleTTL, удаляются.
type RateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*clientLimiter
	limit       rate.Limit
	burst       int
	now         func() time.Time
	lastCleanup time.Time
}

// NewRateLimiter создает ограничитель на requestsPerMinute запросов с запасом burst
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters:    make(map[string]*clientLimiter),
		limit:       rate.Limit(float64(requestsPerMinute) / 60),
		burst:       burst,
		now:         time.Now,
		lastCleanup: time.Now(),
	}
}

// Middleware отвечает 429, когда клиент исчерпал лимит
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter(clientKey(r)).Allow() {
			w.Header().Set("Retry-After", strconv.Itoa(60))
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) >= clientIdleTTL {
		l.evictIdle(now)
	}

	client, ok := l.limiters[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = client
	}
	client.lastSeen = now
	return client.limiter
}

// evictIdle удаляет ограничители неактивных клиентов. Вызывается под l.mu.
func (l *RateLimiter) evictIdle(now time.Time) {
	for key, client := range l.limiters {
		if now.Sub(client.lastSeen) >= clientIdleTTL {
			delete(l.limiters, key)
		}
	}
	l.lastCleanup = now
}

func (l *RateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.limiters)
}

func clientKey(r *http.Request) string {
	if userID := r.Header.Get(HeaderUserID); userID != "" {
		return "user:" + userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
