package entropy

// A Backend yields unpredictable bytes from one platform primitive.
//
// Backends are resolved per Source and share its single-threaded
// discipline; they are not safe for concurrent use.
type Backend interface {
	// Name returns the stable identifier of the backend. It is used for
	// mandatory-backend selection, logging and metrics.
	Name() string

	// Fill fills all of p with random bytes or fails. Implementations
	// loop over their primitive's per-call limit and retry interrupted
	// calls internally; a returned error always means p holds no usable
	// fresh content.
	Fill(p []byte) error

	// Close releases any handle the backend caches. Backends without a
	// handle return nil. Close is idempotent.
	Close() error
}
