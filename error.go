package bresp

import (
	"github.com/cockroachdb/errors"
)

// BodyReadError reports a transport failure while consuming the request body.
// It is surfaced to the caller as-is, nothing in this package retries.
type BodyReadError struct{ err error }

func newBodyReadError(err error) *BodyReadError {
	return &BodyReadError{err: errors.Wrap(err, "read request body")}
}

func (e *BodyReadError) Error() string { return e.err.Error() }
func (e *BodyReadError) Unwrap() error { return e.err }

// AsBodyReadError uses errors.As to unwrap any error and look for a
// [*BodyReadError].
func AsBodyReadError(err error) (*BodyReadError, bool) {
	var target *BodyReadError
	ok := errors.As(err, &target)

	return target, ok
}

// DecodeError reports a malformed or schema-mismatched structured request
// body. It is returned as a value carrying the decoder's diagnostic, never
// panicked across the boundary.
type DecodeError struct{ err error }

func newDecodeError(err error) *DecodeError {
	return &DecodeError{err: errors.Wrap(err, "decode request body")}
}

func (e *DecodeError) Error() string { return e.err.Error() }
func (e *DecodeError) Unwrap() error { return e.err }

// AsDecodeError uses errors.As to unwrap any error and look for a
// [*DecodeError].
func AsDecodeError(err error) (*DecodeError, bool) {
	var target *DecodeError
	ok := errors.As(err, &target)

	return target, ok
}
