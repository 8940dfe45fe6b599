package retry

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff decides how long to wait before the next attempt. attempt is the
// number of attempts already made, starting at 1.
type Backoff interface {
	Delay(attempt int) time.Duration
}

// BackoffFunc adapts a plain function to the Backoff interface.
type BackoffFunc func(attempt int) time.Duration

// Delay implements Backoff.
func (f BackoffFunc) Delay(attempt int) time.Duration {
	return f(attempt)
}

// Fixed waits the same duration between every attempt. It is the default
// policy, at 4 seconds.
func Fixed(d time.Duration) Backoff {
	return BackoffFunc(func(int) time.Duration {
		return d
	})
}

// Linear waits base on the first retry, then grows by base each attempt.
func Linear(base time.Duration) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		return base * time.Duration(attempt)
	})
}

// Exponential doubles the wait with each attempt: base, 2*base, 4*base, ...
func Exponential(base time.Duration) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		if attempt <= 0 {
			return base
		}
		if attempt > 62 {
			return time.Duration(math.MaxInt64)
		}
		return base * time.Duration(1<<uint(attempt-1))
	})
}

// WithCap limits the delay produced by b to max.
func WithCap(max time.Duration, b Backoff) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		d := b.Delay(attempt)
		if d > max {
			return max
		}
		return d
	})
}

// WithJitter spreads the delay produced by b by a random factor in
// [-factor, +factor], so concurrent sessions do not wake in lockstep.
func WithJitter(factor float64, b Backoff) Backoff {
	return BackoffFunc(func(attempt int) time.Duration {
		d := b.Delay(attempt)
		if factor <= 0 {
			return d
		}
		jitter := (rand.Float64()*2 - 1) * float64(d) * factor
		out := time.Duration(float64(d) + jitter)
		if out < 0 {
			return 0
		}
		return out
	})
}
