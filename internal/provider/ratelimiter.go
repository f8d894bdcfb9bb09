package provider

import (
	"context"
	"sync"
	"time"
)

// RateLimiter implements token bucket rate limiting for provider calls,
// with separate minute-level and day-level buckets.
type RateLimiter struct {
	requestsPerMinute int
	requestsPerDay    int

	mu               sync.Mutex
	minuteTokens     int
	minuteLastRefill time.Time
	dayTokens        int
	dayLastRefill    time.Time
}

// NewRateLimiter creates a rate limiter with full buckets. Non-positive
// limits disable the corresponding bucket.
func NewRateLimiter(requestsPerMinute, requestsPerDay int) *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		requestsPerDay:    requestsPerDay,
		minuteTokens:      requestsPerMinute,
		minuteLastRefill:  now,
		dayTokens:         requestsPerDay,
		dayLastRefill:     now,
	}
}

// Wait blocks until a request may proceed or the context ends.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		if rl.tryConsume() {
			return nil
		}

		wait := rl.waitTime()
		if wait <= 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (rl *RateLimiter) tryConsume() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refillLocked(time.Now())

	minuteOk := rl.requestsPerMinute <= 0 || rl.minuteTokens > 0
	dayOk := rl.requestsPerDay <= 0 || rl.dayTokens > 0
	if !minuteOk || !dayOk {
		return false
	}

	if rl.requestsPerMinute > 0 {
		rl.minuteTokens--
	}
	if rl.requestsPerDay > 0 {
		rl.dayTokens--
	}
	return true
}

func (rl *RateLimiter) refillLocked(now time.Time) {
	if now.Sub(rl.minuteLastRefill) >= time.Minute {
		rl.minuteTokens = rl.requestsPerMinute
		rl.minuteLastRefill = now
	}
	if now.Sub(rl.dayLastRefill) >= 24*time.Hour {
		rl.dayTokens = rl.requestsPerDay
		rl.dayLastRefill = now
	}
}

func (rl *RateLimiter) waitTime() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	var wait time.Duration
	if rl.requestsPerMinute > 0 && rl.minuteTokens <= 0 {
		wait = time.Minute - now.Sub(rl.minuteLastRefill)
	}
	if rl.requestsPerDay > 0 && rl.dayTokens <= 0 {
		if dayWait := 24*time.Hour - now.Sub(rl.dayLastRefill); dayWait > wait {
			wait = dayWait
		}
	}
	return wait
}
