package try

import (
	"fmt"
	"io"
	"os"
)

// Console sinks write through these seams so embedders and tests can capture
// output and intercept process termination.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	exit   func(int) = os.Exit
)

// ToConsole writes the outcome's message, followed by a newline, to standard
// output for a Success and to standard error for a Failure.
func (t Try[T, E]) ToConsole() {
	if t.ok {
		fmt.Fprintln(stdout, t.Message())
		return
	}
	fmt.Fprintln(stderr, t.Message())
}

// Err escalates a Failure to an error. On a Success it returns nil. When the
// failure payload is itself an error it is returned directly; otherwise the
// payload and message are wrapped in a *FailureError.
func (t Try[T, E]) Err() error {
	if t.ok {
		return nil
	}
	if err, isErr := any(t.failure).(error); isErr && err != nil {
		return err
	}
	return &FailureError{payload: t.failure, message: t.message}
}

// FailForError writes the message to standard error and terminates the
// process on a Failure. The exit status defaults to 1 by convention and can
// be overridden with a single non-zero status argument. On a Success it is a
// no-op; exiting on success is the caller's responsibility.
func (t Try[T, E]) FailForError(status ...int) {
	if t.ok {
		return
	}
	code := 1
	if len(status) > 0 && status[0] != 0 {
		code = status[0]
	}
	fmt.Fprintln(stderr, t.Message())
	exit(code)
}
