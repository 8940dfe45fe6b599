// Package try provides a two-variant outcome container as a composable
// alternative to returning bare errors.
//
// A Try holds either a success value or a failure value, never both. Failures
// are inert data: they travel through combinators untouched until the caller
// decides to unwrap, recover, print, or escalate them. The Out adapter is the
// single sanctioned boundary where a returned error is converted into a
// Failure value.
package try

import (
	"fmt"
	"time"
)

// UnwrapError is the panic value raised by Get and GetFailure when called on
// the wrong variant. It always indicates programmer error.
type UnwrapError struct {
	msg string
}

func (e *UnwrapError) Error() string { return e.msg }

// FailureError carries a non-error failure payload when a Failure is
// escalated via Err.
type FailureError struct {
	payload any
	message string
}

func (e *FailureError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("%v", e.payload)
}

// Payload returns the failure value the error was built from.
func (e *FailureError) Payload() any { return e.payload }

// Try holds either a success value of type T or a failure value of type E.
// The zero value is a Failure holding E's zero value; prefer the Success and
// Failure constructors.
//
// A Try is immutable: combinators and annotations return copies. The only
// post-construction metadata are the elapsed/count fields written once by the
// retry engine, which never change the variant identity.
//
// Two outcomes compare equal with == iff they are the same variant with equal
// payload, message, and metadata (for comparable payload types).
type Try[T, E any] struct {
	value   T
	failure E
	ok      bool
	message string

	elapsed time.Duration
	count   int
}

// Success wraps v as a successful outcome.
func Success[T, E any](v T) Try[T, E] {
	return Try[T, E]{value: v, ok: true}
}

// Failure wraps e as a failed outcome.
func Failure[T, E any](e E) Try[T, E] {
	return Try[T, E]{failure: e}
}

// Succeeded reports whether the outcome is a Success.
func (t Try[T, E]) Succeeded() bool { return t.ok }

// Failed reports whether the outcome is a Failure.
func (t Try[T, E]) Failed() bool { return !t.ok }

// Get returns the success payload. It panics with an *UnwrapError on a
// Failure; use GetFailure for the failure payload.
func (t Try[T, E]) Get() T {
	if !t.ok {
		panic(&UnwrapError{msg: "try: called Get on a Failure, use GetFailure instead"})
	}
	return t.value
}

// GetFailure returns the failure payload. It panics with an *UnwrapError on a
// Success; use Get for the success payload.
func (t Try[T, E]) GetFailure() E {
	if t.ok {
		panic(&UnwrapError{msg: "try: called GetFailure on a Success, use Get instead"})
	}
	return t.failure
}

// GetOrElse returns the success payload, or def on a Failure. It never
// panics.
func (t Try[T, E]) GetOrElse(def T) T {
	if t.ok {
		return t.value
	}
	return def
}

// Map applies f to the success payload and wraps the result as a fresh
// Success. It is a no-op on a Failure. A panic inside f is not caught here;
// converting raised errors into values is Out's job.
//
// Map is limited to same-type transforms; use the package-level Map to change
// the payload type.
func (t Try[T, E]) Map(f func(T) T) Try[T, E] {
	if !t.ok {
		return t
	}
	return Success[T, E](f(t.value))
}

// WithMessage returns a copy carrying msg as the human-readable message used
// by Message, String, and the console sinks. The message is orthogonal to the
// payload.
func (t Try[T, E]) WithMessage(msg string) Try[T, E] {
	t.message = msg
	return t
}

// Message returns the message if one was set, else the string rendering of
// the contained payload.
func (t Try[T, E]) Message() string {
	if t.message != "" {
		return t.message
	}
	if t.ok {
		return fmt.Sprintf("%v", t.value)
	}
	return fmt.Sprintf("%v", t.failure)
}

// WithStats returns a copy annotated with retry session metadata. It is
// called once per session by the retry engine; the variant, payload, and
// message are untouched.
func (t Try[T, E]) WithStats(elapsed time.Duration, count int) Try[T, E] {
	t.elapsed = elapsed
	t.count = count
	return t
}

// Elapsed returns the wall-clock duration of the retry session that produced
// this outcome, or zero if it did not come from the retry engine.
func (t Try[T, E]) Elapsed() time.Duration { return t.elapsed }

// Count returns the number of attempts the retry session made to produce
// this outcome, or zero if it did not come from the retry engine.
func (t Try[T, E]) Count() int { return t.count }

// String renders as Success(<payload>) or Failure(<payload>), with the
// message appended when one is set.
func (t Try[T, E]) String() string {
	var s string
	if t.ok {
		s = fmt.Sprintf("Success(%v)", t.value)
	} else {
		s = fmt.Sprintf("Failure(%v)", t.failure)
	}
	if t.message != "" {
		s += ": " + t.message
	}
	return s
}
