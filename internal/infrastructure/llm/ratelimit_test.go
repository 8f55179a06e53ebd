package llm

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func TestRateLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("first call is not delayed", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1000, 0)}
		rl := NewRateLimiter(DefaultMinCallInterval, WithLimiterClock(clock.Now, clock.Sleep))
		require.NoError(t, rl.Acquire(ctx, "groq"))
		assert.Empty(t, clock.sleeps)
	})

	t.Run("second call within interval waits the remainder", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1000, 0)}
		rl := NewRateLimiter(DefaultMinCallInterval, WithLimiterClock(clock.Now, clock.Sleep))

		require.NoError(t, rl.Acquire(ctx, "groq"))
		rl.Record("groq")
		clock.Advance(500 * time.Millisecond)

		require.NoError(t, rl.Acquire(ctx, "groq"))
		require.Len(t, clock.sleeps, 1)
		assert.Equal(t, 1500*time.Millisecond, clock.sleeps[0])
	})

	t.Run("interval is measured from the end of the call", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1000, 0)}
		rl := NewRateLimiter(DefaultMinCallInterval, WithLimiterClock(clock.Now, clock.Sleep))

		require.NoError(t, rl.Acquire(ctx, "groq"))
		clock.Advance(3 * time.Second)
		rl.Record("groq")
		clock.Advance(1 * time.Second)

		require.NoError(t, rl.Acquire(ctx, "groq"))
		require.Len(t, clock.sleeps, 1)
		assert.Equal(t, 1*time.Second, clock.sleeps[0])
	})

	t.Run("providers are throttled independently", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1000, 0)}
		rl := NewRateLimiter(DefaultMinCallInterval, WithLimiterClock(clock.Now, clock.Sleep))

		require.NoError(t, rl.Acquire(ctx, "groq"))
		rl.Record("groq")
		require.NoError(t, rl.Acquire(ctx, "openai"))
		assert.Empty(t, clock.sleeps)
	})

	t.Run("no wait after the interval elapsed", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(1000, 0)}
		rl := NewRateLimiter(DefaultMinCallInterval, WithLimiterClock(clock.Now, clock.Sleep))

		require.NoError(t, rl.Acquire(ctx, "groq"))
		rl.Record("groq")
		clock.Advance(2500 * time.Millisecond)
		require.NoError(t, rl.Acquire(ctx, "groq"))
		assert.Empty(t, clock.sleeps)
	})

	t.Run("concurrent acquirers queue behind each other", func(t *testing.T) {
		now := time.Unix(1000, 0)
		var mu sync.Mutex
		var waits []time.Duration
		rl := NewRateLimiter(DefaultMinCallInterval, WithLimiterClock(
			func() time.Time { return now },
			func(_ context.Context, d time.Duration) error {
				mu.Lock()
				waits = append(waits, d)
				mu.Unlock()
				return nil
			},
		))

		require.NoError(t, rl.Acquire(ctx, "groq"))
		require.NoError(t, rl.Acquire(ctx, "groq"))
		require.NoError(t, rl.Acquire(ctx, "groq"))
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, waits)
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		rl := NewRateLimiter(time.Hour)
		require.NoError(t, rl.Acquire(ctx, "groq"))
		rl.Record("groq")

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.ErrorIs(t, rl.Acquire(cctx, "groq"), context.Canceled)
	})
}
