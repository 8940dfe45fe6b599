package retry_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tryme/retry"
	"github.com/bjaus/tryme/try"
)

// fakeClock is a test clock that tracks sleep calls without actually sleeping.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now()}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		c.sleeps = append(c.sleeps, d)
		c.now = c.now.Add(d)
		return nil
	}
}

func TestDo(t *testing.T) {
	t.Run("stops on first success", func(t *testing.T) {
		attempts := 0
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[string, string] {
			attempts++
			return try.Success[string, string]("it worked!")
		}, retry.WithClock(newFakeClock()))

		require.True(t, outcome.Succeeded())
		assert.Equal(t, "it worked!", outcome.Get())
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, outcome.Count())
	})

	t.Run("succeeds on fourth attempt", func(t *testing.T) {
		attempts := 0
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[string, string] {
			attempts++
			if attempts < 4 {
				return try.Failure[string]("not ready yet")
			}
			return try.Success[string, string]("Ready")
		},
			retry.WithTimeout(time.Hour),
			retry.WithClock(newFakeClock()),
		)

		require.True(t, outcome.Succeeded())
		assert.Equal(t, "Ready", outcome.Get())
		assert.Equal(t, 4, outcome.Count())
	})

	t.Run("zero timeout attempts exactly once", func(t *testing.T) {
		attempts := 0
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[string, string] {
			attempts++
			return try.Failure[string]("Preparing")
		},
			retry.WithTimeout(0),
			retry.WithClock(newFakeClock()),
		)

		require.True(t, outcome.Failed())
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, outcome.Count())
		assert.Equal(t, "Preparing", outcome.GetFailure())
	})

	t.Run("negative timeout attempts exactly once", func(t *testing.T) {
		attempts := 0
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[int, string] {
			attempts++
			return try.Failure[int]("nope")
		},
			retry.WithTimeout(-time.Second),
			retry.WithClock(newFakeClock()),
		)

		assert.True(t, outcome.Failed())
		assert.Equal(t, 1, attempts)
	})

	t.Run("times out with last failure", func(t *testing.T) {
		clock := newFakeClock()
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[string, string] {
			return try.Failure[string]("still preparing")
		},
			retry.WithTimeout(10*time.Second),
			retry.WithBackoff(retry.Fixed(4*time.Second)),
			retry.WithClock(clock),
		)

		require.True(t, outcome.Failed())
		assert.Equal(t, "still preparing", outcome.GetFailure())
		// attempts at t=0s, 4s, 8s, 10s; the last sleep is clamped to the
		// remaining budget
		assert.Equal(t, 4, outcome.Count())
		assert.Equal(t, 10*time.Second, outcome.Elapsed())
		assert.Equal(t, []time.Duration{4 * time.Second, 4 * time.Second, 2 * time.Second}, clock.sleeps)
	})

	t.Run("annotation preserves payload and message", func(t *testing.T) {
		last := try.Failure[string]("payload").WithMessage("human readable")
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[string, string] {
			return last
		},
			retry.WithTimeout(0),
			retry.WithClock(newFakeClock()),
		)

		assert.Equal(t, last.GetFailure(), outcome.GetFailure())
		assert.Equal(t, last.Message(), outcome.Message())
		assert.Equal(t, 1, outcome.Count())
	})

	t.Run("stop and again aliases", func(t *testing.T) {
		attempts := 0
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[string, string] {
			attempts++
			if attempts < 2 {
				return retry.Again[string, string]("not yet")
			}
			return retry.Stop[string, string]("done")
		},
			retry.WithTimeout(time.Minute),
			retry.WithClock(newFakeClock()),
		)

		require.True(t, outcome.Succeeded())
		assert.Equal(t, "done", outcome.Get())
		assert.Equal(t, 2, outcome.Count())
	})

	t.Run("invokes the retry hook after each failed attempt", func(t *testing.T) {
		var statuses []retry.Status
		attempts := 0
		outcome := retry.Do(context.Background(), func(ctx context.Context) try.Try[string, string] {
			attempts++
			if attempts < 4 {
				return try.Failure[string]("not yet")
			}
			return try.Success[string, string]("done")
		},
			retry.WithTimeout(time.Hour),
			retry.WithClock(newFakeClock()),
			retry.OnRetry(func(ctx context.Context, status retry.Status, delay time.Duration) {
				statuses = append(statuses, status)
			}),
		)

		require.True(t, outcome.Succeeded())
		require.Len(t, statuses, 3)
		for i, status := range statuses {
			assert.Equal(t, i+1, status.Count)
		}
	})

	t.Run("cancelled context ends the session with the last outcome", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		outcome := retry.Do(ctx, func(ctx context.Context) try.Try[string, string] {
			attempts++
			cancel()
			return try.Failure[string]("interrupted")
		},
			retry.WithTimeout(time.Hour),
			retry.WithClock(newFakeClock()),
		)

		require.True(t, outcome.Failed())
		assert.Equal(t, "interrupted", outcome.GetFailure())
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, outcome.Count())
	})
}

func TestNew(t *testing.T) {
	t.Run("each invocation runs a fresh session", func(t *testing.T) {
		attempts := 0
		wrapped := retry.New(func(ctx context.Context) try.Try[string, string] {
			attempts++
			if attempts%3 == 0 {
				return try.Success[string, string]("done")
			}
			return try.Failure[string]("not yet")
		},
			retry.WithTimeout(time.Hour),
			retry.WithClock(newFakeClock()),
		)

		first := wrapped(context.Background())
		second := wrapped(context.Background())

		require.True(t, first.Succeeded())
		require.True(t, second.Succeeded())
		assert.Equal(t, 3, first.Count())
		assert.Equal(t, 3, second.Count())
	})
}

func TestTicker(t *testing.T) {
	var buf bytes.Buffer
	tick := retry.Ticker(&buf, 2)

	for range 3 {
		tick(context.Background(), retry.Status{}, 0)
	}

	assert.Equal(t, "..\n.", buf.String())
}
