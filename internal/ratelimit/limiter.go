// Package ratelimit caps contact submissions per client identity using
// fixed-window counting: each key gets a counter that resets when the
// window elapses, with the window starting lazily on the key's first
// request. A burst straddling a window boundary can briefly exceed the
// nominal rate; that is a known property of fixed-window counting, not a
// bug. Swapping in a sliding window or token bucket changes the documented
// behavior.
//
// State is process-local. A restart clears all counters, and a
// horizontally scaled deployment needs a shared store behind the Limiter
// interface before the cap means anything across replicas.
package ratelimit

import "time"

// Limiter decides whether a request identified by key may proceed.
// Implementations must be safe for concurrent use.
type Limiter interface {
	// Allow increments the counter for key and reports whether the
	// request is within the window's capacity. When denied, retryAfter
	// is the time remaining until the current window expires.
	Allow(key string) (allowed bool, retryAfter time.Duration)

	// Close stops background goroutines and releases resources.
	Close()
}
