package entropy

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrUnsupported indicates that no entropy backend is available on
	// this platform. The condition is permanent and not retryable.
	ErrUnsupported = ErrorKind("ErrUnsupported")

	// ErrIO indicates that every available backend reported a primitive
	// error other than an interrupt. The caller may retry after
	// diagnosis.
	ErrIO = ErrorKind("ErrIO")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an entropy acquisition failure. It has full support for
// errors.Is and errors.As, so the caller can check against an error kind
// when determining the reason for the failure.
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
