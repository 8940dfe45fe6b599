// Package retry repeatedly evaluates an outcome-returning operation until it
// succeeds or a wall-clock budget runs out.
//
// retry is the engine side of tryme:
//
//   - Outcome-Driven: operations return try.Try values; a Success stops the
//     loop, a Failure schedules another attempt
//   - Composable Backoff: chain policies like Exponential, WithCap, and WithJitter
//   - Injectable Clock: control time in tests without real sleeps
//   - Session Metadata: the final outcome carries Elapsed and Count
//   - Embeddable: no runtime dependencies beyond the standard library
//
// # Quick Start
//
// Wrapping an operation once and calling it later:
//
//	waitForDinner := retry.New(func(ctx context.Context) try.Try[string, string] {
//	    if !dinnerReady() {
//	        return retry.Again[string, string]("not ready yet")
//	    }
//	    return retry.Stop[string, string]("Ready!")
//	}, retry.WithTimeout(5*time.Minute))
//
//	outcome := waitForDinner(ctx)
//
// Or running it directly with Do:
//
//	outcome := retry.Do(ctx, checkService,
//	    retry.WithTimeout(30*time.Second),
//	    retry.WithBackoff(retry.Fixed(2*time.Second)),
//	)
//	if outcome.Failed() {
//	    log.Printf("gave up after %d attempts in %s", outcome.Count(), outcome.Elapsed())
//	}
//
// # Session Semantics
//
// A session starts at the first attempt and owns its own clock and counter;
// invoking a wrapped Func again starts a fresh session. The loop has three
// states: running, stopped by success, stopped by timeout. A Success outcome
// (or the Stop alias) terminates immediately. A Failure (or Again) retries
// until the elapsed wall-clock time reaches the timeout, sleeping per the
// backoff policy in between; the last sleep is clamped to the remaining
// budget. A timeout of zero or less attempts the operation exactly once.
//
// The returned outcome is always the literal last outcome the operation
// produced, annotated with Elapsed and Count. Timing out does not synthesize
// a distinct error: callers that must tell a timeout from an ordinary
// failure compare Elapsed against their configured timeout.
//
// The engine never catches panics from the operation and has no cancellation
// token of its own; cancelling the context interrupts the inter-attempt
// sleep and ends the session with the last observed outcome.
//
// # Backoff Policies
//
// The package provides three base policies:
//
//	retry.Fixed(4*time.Second)              // Always 4s (the default)
//	retry.Linear(100*time.Millisecond)      // 100ms, 200ms, 300ms, ...
//	retry.Exponential(100*time.Millisecond) // 100ms, 200ms, 400ms, 800ms, ...
//
// Policies compose with wrappers:
//
//	// Exponential backoff, capped at 10s, with ±20% jitter
//	backoff := retry.WithJitter(0.2,
//	    retry.WithCap(10*time.Second,
//	        retry.Exponential(100*time.Millisecond),
//	    ),
//	)
//
// Custom policies can be created with BackoffFunc:
//
//	custom := retry.BackoffFunc(func(attempt int) time.Duration {
//	    return time.Duration(attempt*attempt) * 100 * time.Millisecond
//	})
//
// # Observing Attempts
//
// The OnRetry hook fires after each failed attempt with a Status snapshot
// and the upcoming delay. Ticker is a ready-made hook that prints progress
// dots:
//
//	outcome := retry.Do(ctx, op, retry.OnRetry(retry.Ticker(os.Stdout, 80)))
package retry
