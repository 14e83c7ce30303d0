// Package ttlcache is a small TTL key-value cache for public content reads.
//
// Admin writes do not invalidate entries; readers may see content up to one
// TTL stale. That staleness-for-performance tradeoff is intentional. The
// Cache interface exists so the in-memory map can be swapped for a shared
// external store without touching call sites.
package ttlcache

import (
	"sync"
	"time"
)

// Cache is a key-value store with per-store TTL semantics.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Invalidate(key string)
}

// DefaultTTL is how long public hero/about reads may be served from memory.
const DefaultTTL = 30 * time.Second

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory is the in-process Cache implementation. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	done    chan struct{}
}

// NewMemory creates a memory cache with the given TTL and starts a janitor
// that drops expired entries. Call Close to stop the janitor.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Get returns the cached value for key if it has not expired.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for one TTL.
func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: value, expiresAt: time.Now().Add(m.ttl)}
}

// Invalidate removes key immediately.
func (m *Memory) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Close stops the janitor goroutine.
func (m *Memory) Close() {
	close(m.done)
}

func (m *Memory) janitor() {
	ticker := time.NewTicker(m.ttl * 2)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mu.Lock()
			now := time.Now()
			for key, e := range m.entries {
				if now.After(e.expiresAt) {
					delete(m.entries, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
