package service

import "sync"

const defaultBreakerLimit = 3

// Breaker simulates an external payment dependency that fails periodically:
// every limit-th call reports blocked and resets the counter. It is a
// deterministic failure injector, not a real circuit breaker — no cool-down,
// no half-open probing.
//
// The counter is shared across all callers, so increment-and-check is one
// atomic operation under a mutex.
type Breaker struct {
	mu    sync.Mutex
	count int
	limit int
}

func NewBreaker(limit int) *Breaker {
	if limit <= 0 {
		limit = defaultBreakerLimit
	}
	return &Breaker{limit: limit}
}

// Call registers one invocation and reports whether it is blocked. Reaching
// the limit blocks the call and resets the counter, so the next call goes
// through again.
func (b *Breaker) Call() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.count++
	if b.count >= b.limit {
		b.count = 0
		return true
	}
	return false
}
