package llm

import (
	"context"
	"sync"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/infrastructure/metrics"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"
)

// DefaultMinCallInterval is the minimum gap between two calls to one provider.
const DefaultMinCallInterval = 2000 * time.Millisecond

// RateLimiter spaces calls to the same provider process-wide.
//
// Acquire reserves the next free slot so concurrent runs queue behind each
// other; Record moves the mark to the end of a finished call.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall map[string]time.Time
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

var _ interfaces.IRateLimiter = (*RateLimiter)(nil)

type RateLimiterOption func(*RateLimiter)

// WithLimiterClock replaces time.Now and the blocking sleep, for tests.
func WithLimiterClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) RateLimiterOption {
	return func(r *RateLimiter) {
		r.now = now
		r.sleep = sleep
	}
}

func NewRateLimiter(interval time.Duration, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		interval: interval,
		lastCall: make(map[string]time.Time),
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RateLimiter) Acquire(ctx context.Context, provider string) error {
	r.mu.Lock()
	now := r.now()
	slot := now
	if last, ok := r.lastCall[provider]; ok {
		if earliest := last.Add(r.interval); earliest.After(now) {
			slot = earliest
		}
	}
	r.lastCall[provider] = slot
	r.mu.Unlock()

	if wait := slot.Sub(now); wait > 0 {
		metrics.RateLimitWait.WithLabelValues(provider).Observe(wait.Seconds())
		return r.sleep(ctx, wait)
	}
	return nil
}

func (r *RateLimiter) Record(provider string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if last, ok := r.lastCall[provider]; !ok || now.After(last) {
		r.lastCall[provider] = now
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
