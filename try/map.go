package try

// The type-changing combinators live at package level because Go methods
// cannot introduce new type parameters.

// Map applies f to the success payload of t and wraps the result as a
// Success. Failures pass through unchanged, message and metadata included.
func Map[T, E, U any](t Try[T, E], f func(T) U) Try[U, E] {
	if t.Failed() {
		return failedAs[T, E, U](t)
	}
	return Success[U, E](f(t.value))
}

// Chain applies f to the success payload of t and returns the outcome f
// produces, enabling sequencing of fallible steps without nested unwrapping.
// Failures pass through unchanged.
func Chain[T, E, U any](t Try[T, E], f func(T) Try[U, E]) Try[U, E] {
	if t.Failed() {
		return failedAs[T, E, U](t)
	}
	return f(t.value)
}

// Recover applies f to the failure payload of t to produce a Success,
// supplying a fallback value. It is a no-op on a Success.
func Recover[T, E any](t Try[T, E], f func(E) T) Try[T, E] {
	if t.ok {
		return t
	}
	return Success[T, E](f(t.failure))
}

// MapFailure applies f to the failure payload of t and wraps the result as a
// Failure. It is a no-op on a Success.
func MapFailure[T, E, F any](t Try[T, E], f func(E) F) Try[T, F] {
	if t.ok {
		out := Success[T, F](t.value)
		out.message = t.message
		out.elapsed = t.elapsed
		out.count = t.count
		return out
	}
	return Failure[T](f(t.failure))
}

// Filter converts a Success into a Failure holding the same payload when the
// payload does not satisfy pred. Failures pass through unchanged.
func Filter[T any](t Try[T, T], pred func(T) bool) Try[T, T] {
	if t.Failed() || pred(t.value) {
		return t
	}
	return Failure[T, T](t.value)
}

// failedAs rebuilds a Failure under a new success type, preserving the
// payload, message, and metadata.
func failedAs[T, E, U any](t Try[T, E]) Try[U, E] {
	out := Failure[U](t.failure)
	out.message = t.message
	out.elapsed = t.elapsed
	out.count = t.count
	return out
}
