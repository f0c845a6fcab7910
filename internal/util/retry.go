// ABOUTME: Retry backoff helper shared by the provider clients
// ABOUTME: Exponential growth with jitter, capped at a configurable maximum
package util

import (
	"math/rand/v2"
	"time"
)

// Backoff computes retry delays: base doubled per attempt, +-25% jitter,
// capped at Max. The zero value is unusable; use NewBackoff.
type Backoff struct {
	Base time.Duration
	Max  time.Duration
}

// NewBackoff returns a Backoff with a 30s cap
func NewBackoff(base time.Duration) Backoff {
	return Backoff{Base: base, Max: 30 * time.Second}
}

// Delay returns the wait before the given retry attempt. Attempt 0 is the
// initial call and waits nothing.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap the shift so the multiplication cannot overflow
	if attempt > 30 {
		attempt = 30
	}
	d := b.Base * time.Duration(1<<uint(attempt))
	if d > b.Max || d <= 0 {
		d = b.Max
	}
	jitter := time.Duration(rand.Int64N(int64(d)/2)) - d/4
	return d + jitter
}
