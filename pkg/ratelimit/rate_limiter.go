package ratelimit

import (
	"sync"
	"time"
)

type RateLimitType string

const (
	RateLimitTypeDefault RateLimitType = "default"
	// RateLimitTypeQuote guards the oracle-backed quote endpoint; each hit
	// costs a generative-model call, so its budget is the tightest.
	RateLimitTypeQuote  RateLimitType = "quote"
	RateLimitTypeHealth RateLimitType = "health"
)

// Config holds the per-type request budgets for one window
type Config struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	QuoteRequests   int           `json:"quote_requests"`
	HealthRequests  int           `json:"health_requests"`
}

// Result describes one rate limit decision
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

type window struct {
	start time.Time
	count int
}

// RateLimiter implements fixed-window counting in process memory. Everything
// else in this service is in-memory session state, so the limiter follows
// suit rather than dragging in an external store.
type RateLimiter struct {
	config *Config

	mu      sync.Mutex
	windows map[string]*window
}

func NewRateLimiter(config *Config) *RateLimiter {
	if config.WindowDuration <= 0 {
		config.WindowDuration = time.Minute
	}
	return &RateLimiter{
		config:  config,
		windows: make(map[string]*window),
	}
}

// IsAllowed counts one request from identifier against the budget for
// limitType and reports the decision.
func (rl *RateLimiter) IsAllowed(identifier string, limitType RateLimitType) Result {
	limit := rl.getLimit(limitType)
	if !rl.config.Enabled || limit <= 0 {
		return Result{Allowed: true, Limit: limit, Remaining: limit}
	}

	key := string(limitType) + ":" + identifier
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.config.WindowDuration {
		w = &window{start: now}
		rl.windows[key] = w
		rl.pruneLocked(now)
	}

	resetTime := w.start.Add(rl.config.WindowDuration).Unix()
	if w.count >= limit {
		return Result{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			ResetTime: resetTime,
		}
	}

	w.count++
	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - w.count,
		ResetTime: resetTime,
	}
}

func (rl *RateLimiter) getLimit(limitType RateLimitType) int {
	switch limitType {
	case RateLimitTypeQuote:
		return rl.config.QuoteRequests
	case RateLimitTypeHealth:
		return rl.config.HealthRequests
	default:
		return rl.config.DefaultRequests
	}
}

// pruneLocked drops windows that ended more than one window ago. Called with
// the mutex held, piggybacked on window rollover so no janitor goroutine is
// needed.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	cutoff := 2 * rl.config.WindowDuration
	for key, w := range rl.windows {
		if now.Sub(w.start) >= cutoff {
			delete(rl.windows, key)
		}
	}
}
