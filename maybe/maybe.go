// Package maybe provides a container for values that may be absent, with the
// same combinator shape as package try but no failure payload.
package maybe

import "fmt"

// UnwrapError is the panic value raised by Get on a Nothing. It always
// indicates programmer error.
type UnwrapError struct {
	msg string
}

func (e *UnwrapError) Error() string { return e.msg }

// Maybe holds either a present value of type T (Just) or no value (Nothing).
// The zero value is Nothing.
type Maybe[T any] struct {
	value   T
	present bool
}

// Just wraps v as a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// Nothing returns the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of converts Go's comma-ok idiom into a Maybe: Just(v) when ok, Nothing
// otherwise.
func Of[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(v)
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool { return m.present }

// IsNothing reports whether the value is absent.
func (m Maybe[T]) IsNothing() bool { return !m.present }

// Get returns the present value. It panics with an *UnwrapError on Nothing.
func (m Maybe[T]) Get() T {
	if !m.present {
		panic(&UnwrapError{msg: "maybe: called Get on Nothing"})
	}
	return m.value
}

// GetOrElse returns the present value, or def on Nothing. It never panics.
func (m Maybe[T]) GetOrElse(def T) T {
	if !m.present {
		return def
	}
	return m.value
}

// Map applies f to the present value and wraps the result in a Just. It is a
// no-op on Nothing. Use the package-level Map to change the value type.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if !m.present {
		return m
	}
	return Just(f(m.value))
}

// Filter converts a Just into Nothing when the value does not satisfy pred.
// Nothing passes through unchanged.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if !m.present || pred(m.value) {
		return m
	}
	return Nothing[T]()
}

// String renders as Just(<value>) or Nothing.
func (m Maybe[T]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Map applies f to the present value of m and wraps the result in a Just.
// Nothing passes through unchanged.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return Just(f(m.value))
}

// Chain applies f to the present value of m and returns the Maybe f produces.
// Nothing passes through unchanged.
func Chain[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if !m.present {
		return Nothing[U]()
	}
	return f(m.value)
}
