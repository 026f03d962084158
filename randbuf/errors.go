package randbuf

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidArgument indicates a negative count or offset where a
	// positive (or omitted) value is required.
	ErrInvalidArgument = ErrorKind("ErrInvalidArgument")

	// ErrOutOfRange indicates a typed view offset at or beyond the
	// available element count.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrInsufficientData indicates a typed view count that exceeds the
	// elements available after the offset.
	ErrInsufficientData = ErrorKind("ErrInsufficientData")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a buffer access failure. It has full support for
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
