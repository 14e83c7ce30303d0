// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Defaults for the admin API: 30 requests per client IP per minute.
const (
	DefaultLimit  = 30
	DefaultWindow = time.Minute
)

// Limiter counts requests per key in fixed, non-overlapping windows.
// It is safe for concurrent use. State is process-local: in a multi-instance
// deployment each instance enforces its own limit.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	window  time.Duration
	done    chan struct{}
}

type window struct {
	count   int
	resetAt time.Time
}

// New creates a limiter allowing limit requests per window per key and starts
// a pruning loop so long-lived processes do not accumulate an entry for every
// client IP ever seen. Call Close to stop the loop.
func New(limit int, dur time.Duration) *Limiter {
	l := &Limiter{
		windows: make(map[string]*window),
		limit:   limit,
		window:  dur,
		done:    make(chan struct{}),
	}
	go l.pruneLoop()
	return l
}

// Check records a request for key and reports whether it is allowed along
// with how many requests remain in the current window.
func (l *Limiter) Check(key string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[key]

	if !ok || now.After(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.window)}
		return true, l.limit - 1
	}

	if w.count >= l.limit {
		return false, 0
	}

	w.count++
	return true, l.limit - w.count
}

// Reset clears the window for a key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// Close stops the pruning loop.
func (l *Limiter) Close() {
	close(l.done)
}

// pruneLoop drops expired windows so the map stays bounded by the number of
// clients active within roughly two windows.
func (l *Limiter) pruneLoop() {
	ticker := time.NewTicker(l.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, w := range l.windows {
				if now.After(w.resetAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// ClientIP derives the rate-limit key for a request: the first entry of
// X-Forwarded-For, then X-Real-IP, then a shared "unknown" bucket. Pooling
// unidentifiable clients into one bucket is a conservative default.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return "unknown"
}
