package secrandom

import (
	"github.com/secrandom/secrandom/entropy"
	"github.com/secrandom/secrandom/randbuf"
)

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// ErrNotOpen indicates an operation attempted on a closed session.
const ErrNotOpen = ErrorKind("ErrNotOpen")

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a session failure. It has full support for errors.Is
// and errors.As, so the caller can check against an error kind when
// determining the reason for the failure.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Kinds raised by the inner layers, re-exported for convenience. Failures
// of the entropy source propagate unchanged through Refill; accessor
// failures are local to the call and leave the session state untouched.
var (
	ErrUnsupported      = entropy.ErrUnsupported
	ErrIO               = entropy.ErrIO
	ErrInvalidArgument  = randbuf.ErrInvalidArgument
	ErrOutOfRange       = randbuf.ErrOutOfRange
	ErrInsufficientData = randbuf.ErrInsufficientData
)
