package try

import "errors"

// Out runs op and converts its outcome into a Try. A nil error becomes a
// Success of the returned value; a non-nil error becomes a Failure of the
// error.
//
// When expected targets are given, only errors matching one of them (per
// errors.Is) are captured. An error outside the expected set propagates
// uncaught as a panic: Out does not swallow unexpected failures.
func Out[T any](op func() (T, error), expected ...error) Try[T, error] {
	v, err := op()
	if err == nil {
		return Success[T, error](v)
	}
	if len(expected) == 0 {
		return Failure[T](err)
	}
	for _, target := range expected {
		if errors.Is(err, target) {
			return Failure[T](err)
		}
	}
	panic(err)
}
