package retry

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Status is a snapshot of a retry session handed to the OnRetry hook.
type Status struct {
	// Start is when the session's first attempt began.
	Start time.Time
	// Elapsed is the wall-clock time since Start.
	Elapsed time.Duration
	// Count is the number of attempts made so far.
	Count int
}

// OnRetryFunc is called after each failed attempt, before the inter-attempt
// sleep. delay is the clamped duration the session is about to wait.
type OnRetryFunc func(ctx context.Context, status Status, delay time.Duration)

// config holds a session's configuration.
type config struct {
	timeout time.Duration
	backoff Backoff
	clock   Clock
	onRetry OnRetryFunc
}

func newConfig(opts ...Option) config {
	cfg := config{
		timeout: DefaultTimeout,
		backoff: defaultBackoff,
		clock:   defaultClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a retry session.
type Option func(*config)

// WithTimeout sets the wall-clock budget for the whole session, measured from
// the first attempt. A zero or negative timeout means exactly one attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithBackoff sets the delay policy between attempts.
func WithBackoff(b Backoff) Option {
	return func(c *config) {
		c.backoff = b
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// OnRetry sets a hook that observes the session after each failed attempt.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// Ticker returns an OnRetry hook that writes a progress dot to w per failed
// attempt, wrapping to a new line after columnLimit dots.
func Ticker(w io.Writer, columnLimit int) OnRetryFunc {
	if columnLimit <= 0 {
		columnLimit = 80
	}
	var col int
	return func(_ context.Context, _ Status, _ time.Duration) {
		fmt.Fprint(w, ".")
		col++
		if col == columnLimit {
			fmt.Fprintln(w)
			col = 0
		}
	}
}
