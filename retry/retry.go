package retry

import (
	"context"
	"time"

	"github.com/bjaus/tryme/try"
)

// Func is the signature for retryable operations. Arguments beyond the
// context are closed over by the caller. Every invocation must return a
// try.Try; a panic inside the operation aborts the session and escapes to the
// invocation site.
type Func[T, E any] func(ctx context.Context) try.Try[T, E]

// Default session values.
const (
	DefaultTimeout = 5 * time.Minute
	DefaultDelay   = 4 * time.Second
)

// package-level defaults to avoid allocation
var (
	defaultBackoff = Fixed(DefaultDelay)
	defaultClock   = systemClock{}
)

// Stop wraps v as a Success, signaling the session to terminate. It is plain
// vocabulary: Stop is Success under a name that reads better inside a
// retried operation.
func Stop[T, E any](v T) try.Try[T, E] {
	return try.Success[T, E](v)
}

// Again wraps e as a Failure, signaling the session to try once more. Like
// Stop, it is a readability alias, here for Failure.
func Again[T, E any](e E) try.Try[T, E] {
	return try.Failure[T, E](e)
}

// New wraps op in a retry loop and returns a callable with the same
// signature. Each invocation of the returned Func runs an independent
// session with its own start time and attempt counter, so concurrent callers
// need no coordination beyond what op itself requires.
func New[T, E any](op Func[T, E], opts ...Option) Func[T, E] {
	cfg := newConfig(opts...)
	return func(ctx context.Context) try.Try[T, E] {
		return execute(ctx, op, cfg)
	}
}

// Do runs op under a retry loop until it returns a Success, the timeout
// elapses, or ctx is cancelled during an inter-attempt sleep. The returned
// outcome is the last one op produced, annotated with the session's elapsed
// time and attempt count; its payload and message are preserved unchanged.
//
// A timed-out session returns the last observed Failure, not a synthesized
// timeout value: callers needing an explicit timeout signal compare Elapsed
// against their timeout.
func Do[T, E any](ctx context.Context, op Func[T, E], opts ...Option) try.Try[T, E] {
	return execute(ctx, op, newConfig(opts...))
}

func execute[T, E any](ctx context.Context, op Func[T, E], cfg config) try.Try[T, E] {
	start := cfg.clock.Now()
	deadline := start.Add(cfg.timeout)

	for count := 1; ; count++ {
		outcome := op(ctx)
		now := cfg.clock.Now()

		// Terminal by success, including the Stop alias.
		if outcome.Succeeded() {
			return outcome.WithStats(now.Sub(start), count)
		}

		// Terminal by timeout. A non-positive timeout means one attempt.
		if cfg.timeout <= 0 || !now.Before(deadline) {
			return outcome.WithStats(now.Sub(start), count)
		}

		delay := cfg.backoff.Delay(count)
		if remaining := deadline.Sub(now); delay > remaining {
			delay = remaining
		}

		if cfg.onRetry != nil {
			cfg.onRetry(ctx, Status{Start: start, Elapsed: now.Sub(start), Count: count}, delay)
		}

		if err := cfg.clock.Sleep(ctx, delay); err != nil {
			return outcome.WithStats(cfg.clock.Now().Sub(start), count)
		}
	}
}
