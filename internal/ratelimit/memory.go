package ratelimit

import (
	"sync"
	"time"
)

// entry holds one key's counter and the start of its current window.
type entry struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter is the in-memory fixed-window Limiter. A background
// goroutine periodically evicts entries whose window has long expired so
// the key map does not grow without bound.
type MemoryLimiter struct {
	capacity int
	window   time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	done    chan struct{}
	closed  bool

	// now is swapped out by tests
	now func() time.Time
}

// NewMemoryLimiter creates a limiter allowing capacity requests per key
// per window and starts the eviction goroutine.
func NewMemoryLimiter(capacity int, window time.Duration) *MemoryLimiter {
	m := &MemoryLimiter{
		capacity: capacity,
		window:   window,
		entries:  make(map[string]*entry),
		done:     make(chan struct{}),
		now:      time.Now,
	}
	go m.janitor()
	return m
}

// Allow implements Limiter.
func (m *MemoryLimiter) Allow(key string) (bool, time.Duration) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok || now.Sub(e.windowStart) >= m.window {
		// first request for this key, or the window has elapsed:
		// start a fresh window
		m.entries[key] = &entry{count: 1, windowStart: now}
		if m.capacity >= 1 {
			return true, 0
		}
		return false, m.window
	}

	e.count++
	if e.count > m.capacity {
		return false, e.windowStart.Add(m.window).Sub(now)
	}
	return true, 0
}

// Close stops the eviction goroutine.
func (m *MemoryLimiter) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}
}

// janitor periodically drops entries whose window expired more than one
// full window ago. An expired entry would be reset on its next Allow
// anyway; eviction only reclaims memory for keys that never come back.
func (m *MemoryLimiter) janitor() {
	ticker := time.NewTicker(m.window)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictExpired()
		}
	}
}

func (m *MemoryLimiter) evictExpired() {
	cutoff := m.now().Add(-2 * m.window)
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, e := range m.entries {
		if e.windowStart.Before(cutoff) {
			delete(m.entries, key)
		}
	}
}
