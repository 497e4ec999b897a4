package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
)

// rateLimiter implements a fixed-window request counter keyed by client IP.
// Counters live in one bounded map; entries from expired windows are pruned
// lazily on the next request that touches them, and a periodic sweep inside
// the hot path keeps the map from growing with one-shot clients.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow

	window      time.Duration
	maxRequests int

	// sweepEvery triggers a full prune of expired windows once per this many
	// admitted requests.
	sweepEvery int
	sinceSweep int
}

type clientWindow struct {
	windowStart time.Time
	count       int
}

func newRateLimiter(window time.Duration, maxRequests int) *rateLimiter {
	return &rateLimiter{
		clients:     make(map[string]*clientWindow),
		window:      window,
		maxRequests: maxRequests,
		sweepEvery:  1024,
	}
}

// allow reports whether a request from the given client fits into the
// current window, counting it if so. It also returns the remaining budget
// and the time at which the client's window resets.
func (rl *rateLimiter) allow(clientKey string, now time.Time) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sinceSweep++
	if rl.sinceSweep >= rl.sweepEvery {
		rl.sinceSweep = 0
		for key, cw := range rl.clients {
			if now.Sub(cw.windowStart) >= rl.window {
				delete(rl.clients, key)
			}
		}
	}

	cw, ok := rl.clients[clientKey]
	if !ok || now.Sub(cw.windowStart) >= rl.window {
		rl.clients[clientKey] = &clientWindow{windowStart: now, count: 1}
		return true, rl.maxRequests - 1, now.Add(rl.window)
	}

	reset := cw.windowStart.Add(rl.window)
	if cw.count >= rl.maxRequests {
		return false, 0, reset
	}

	cw.count++
	return true, rl.maxRequests - cw.count, reset
}

// withRateLimit rejects clients exceeding the configured requests-per-window
// budget with 429. The limit is keyed by remote IP.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	limiter := newRateLimiter(h.rateLimit.Window, h.rateLimit.MaxRequests)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientKey, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			clientKey = r.RemoteAddr
		}

		now := time.Now()
		allowed, remaining, reset := limiter.allow(clientKey, now)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", reset.UTC().Format(time.RFC3339))

		if !allowed {
			log := logger.FromRequest(r)
			log.Warn().
				Str("client", clientKey).
				Str("uri", r.RequestURI).
				Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(time.Until(reset).Seconds())+1))
			utils.WriteJSON(w, models.ErrorResponse{Error: "too many requests", Code: "rate_limited"}, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
