package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"feedback_service/pkg/ctxdata"
)

const (
	defaultLimiterTTL     = 30 * time.Minute
	defaultLimiterCleanup = 5 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// ActorRateLimiter keeps one token bucket per acting user. Idle buckets are
// dropped by Run.
type ActorRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	clock   clockwork.Clock
}

// NewActorRateLimiter allows perMinute requests per actor with the given
// burst. A non-positive perMinute disables limiting.
func NewActorRateLimiter(perMinute float64, burst int, clock clockwork.Clock) *ActorRateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(perMinute / 60)
	}
	return &ActorRateLimiter{
		entries: make(map[string]*limiterEntry),
		limit:   limit,
		burst:   burst,
		ttl:     defaultLimiterTTL,
		clock:   clock,
	}
}

func (l *ActorRateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastUse = now
	return e.limiter.AllowN(now, 1)
}

func (l *ActorRateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	for k, e := range l.entries {
		if now.Sub(e.lastUse) > l.ttl {
			delete(l.entries, k)
		}
	}
}

func (l *ActorRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Run evicts idle limiters until ctx is cancelled.
func (l *ActorRateLimiter) Run(ctx context.Context) {
	ticker := l.clock.NewTicker(defaultLimiterCleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			l.cleanup()
		}
	}
}

// Middleware rejects requests over the actor's budget with 429. It must run
// after the identity middleware.
func (l *ActorRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := ctxdata.CallerFrom(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if !l.allow(caller.UserID.String()) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.burst))
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
