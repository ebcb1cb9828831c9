// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config controls the limiter. Zero or negative RequestsPerMinute disables
// limiting entirely.
type Config struct {
	RequestsPerMinute int
	Burst             int
}

// LoadConfig reads limiter settings from the environment.
// RATE_LIMIT_PER_MINUTE defaults to 60, RATE_LIMIT_BURST to 10.
func LoadConfig() Config {
	cfg := Config{RequestsPerMinute: 60, Burst: 10}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RequestsPerMinute = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}
	return cfg
}

// Limiter tracks a token bucket per client ID.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether the client may proceed, consuming one token if so.
func (l *Limiter) Allow(clientID string) bool {
	if l.cfg.RequestsPerMinute <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Burst), lastRefill: now}
		l.buckets[clientID] = b
	}

	refillRate := float64(l.cfg.RequestsPerMinute) / 60.0
	b.tokens += now.Sub(b.lastRefill).Seconds() * refillRate
	if b.tokens > float64(l.cfg.Burst) {
		b.tokens = float64(l.cfg.Burst)
	}
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}
