package token_bucket

import (
	"math"
	"sync"
	"time"
)

// TokenBucket классический token bucket: Allow тратит один токен,
// токены восстанавливаются непрерывно со скоростью refillRate в секунду.
// Дробная часть копится, поэтому медленные скорости (< 1/сек) тоже работают.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return NewTokenBucketWithClock(capacity, refillRate, time.Now)
}

func NewTokenBucketWithClock(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	c := float64(max(capacity, 0))
	return &TokenBucket{
		capacity:   c,
		tokens:     c,
		refillRate: math.Max(refillRate, 0),
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
