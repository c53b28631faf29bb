package ats

import (
	"sync"
	"time"
)

const (
	quotaPerWindow = 10
	quotaWindow    = time.Hour
)

// Limiter enforces a per-user rolling-window quota on resume checks. The
// check and the increment happen under one lock, so two concurrent requests
// from the same user cannot both pass when only one slot remains.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string][]time.Time
	now     func() time.Time
}

// NewLimiter builds a Limiter with the given quota. A nil now func defaults
// to time.Now.
func NewLimiter(limit int, window time.Duration, now func() time.Time) *Limiter {
	if limit <= 0 {
		limit = quotaPerWindow
	}
	if window <= 0 {
		window = quotaWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		limit:   limit,
		window:  window,
		entries: make(map[string][]time.Time),
		now:     now,
	}
}

// Allow records one invocation for key if the quota permits it. When the
// window is exhausted it reports false and how long until the oldest
// invocation rolls out of the window.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := l.entries[key]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		retryAfter := kept[0].Add(l.window).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		l.entries[key] = kept
		return false, retryAfter
	}

	l.entries[key] = append(kept, now)
	return true, 0
}
