// Package randbuf owns one contiguous block of captured randomness and
// exposes bounds-checked views of it as bytes and fixed-width unsigned
// integers, without re-reading the entropy source.
package randbuf

import (
	"encoding/binary"
	"fmt"
)

// Buffer is a single growable byte buffer plus a record of how much of it
// holds data from the most recent successful refill. Bytes beyond the valid
// region are never exposed.
//
// Accessors take a count and a 1-based offset; passing 0 for either means
// "not given": all remaining elements, offset 1. Negative values are
// rejected. The byte accessor is lenient (clamps, signals exhaustion with
// nil), the typed accessors are strict (OutOfRange / InsufficientData) and
// never yield a truncated or zero-padded integer.
type Buffer struct {
	storage  []byte
	validLen int
}

// New creates an empty Buffer. Storage is allocated lazily on the first
// Refill.
func New() *Buffer {
	return &Buffer{}
}

// Len returns the length of the valid region.
func (b *Buffer) Len() int {
	return b.validLen
}

// Cap returns the allocated length of the owned storage.
func (b *Buffer) Cap() int {
	return cap(b.storage)
}

// Refill obtains n fresh bytes through fill, replacing any prior contents.
// The existing allocation is reused only when n matches its capacity,
// otherwise the old storage is released and exactly n bytes are allocated.
// Refill is all-or-nothing: on failure the valid region is left unchanged
// and the error of fill is returned as is. Returns n on success; n == 0 is
// permitted and empties the valid region without touching fill.
func (b *Buffer) Refill(fill func([]byte) error, n int) (int, error) {
	if n < 0 {
		return 0, makeError(ErrInvalidArgument, fmt.Sprintf(
			"failed to refill %d bytes: negative length", n))
	}
	if n == 0 {
		b.validLen = 0
		return 0, nil
	}

	storage := b.storage
	if n != cap(storage) {
		storage = make([]byte, n)
	}
	if err := fill(storage[:n]); err != nil {
		return 0, err
	}
	b.storage = storage[:n]
	b.validLen = n
	return n, nil
}

// Release drops the storage and empties the valid region.
func (b *Buffer) Release() {
	b.storage = nil
	b.validLen = 0
}

// Bytes returns count bytes starting at the 1-based offset. A count of 0
// means everything from offset to the end of the valid region; a count
// beyond that is clamped, not an error. An offset past the valid region
// yields (nil, nil) to signal exhaustion rather than misuse. The returned
// slice aliases the buffer and is only valid until the next Refill.
func (b *Buffer) Bytes(count, offset int) ([]byte, error) {
	count, offset, err := checkArgs(count, offset)
	if err != nil {
		return nil, err
	}

	if offset >= b.validLen {
		// exhausted, not an error
		return nil, nil
	}
	available := b.validLen - offset
	if count == 0 || count > available {
		count = available
	}
	return b.storage[offset : offset+count : offset+count], nil
}

// U8 returns count unsigned 8 bit integers starting at the 1-based element
// offset.
func (b *Buffer) U8(count, offset int) ([]uint8, error) {
	count, start, err := b.checkTyped(1, count, offset)
	if err != nil {
		return nil, err
	}

	out := make([]uint8, count)
	copy(out, b.storage[start:start+count])
	return out, nil
}

// U16 returns count unsigned 16 bit integers starting at the 1-based
// element offset, each decoded from two consecutive bytes in host-native
// byte order.
func (b *Buffer) U16(count, offset int) ([]uint16, error) {
	count, start, err := b.checkTyped(2, count, offset)
	if err != nil {
		return nil, err
	}

	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.NativeEndian.Uint16(b.storage[start+i*2:])
	}
	return out, nil
}

// U32 returns count unsigned 32 bit integers starting at the 1-based
// element offset, each decoded from four consecutive bytes in host-native
// byte order.
func (b *Buffer) U32(count, offset int) ([]uint32, error) {
	count, start, err := b.checkTyped(4, count, offset)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.NativeEndian.Uint32(b.storage[start+i*4:])
	}
	return out, nil
}

// checkArgs rejects negative arguments and converts the 1-based offset to
// 0-based, with 0 meaning "not given".
func checkArgs(count, offset int) (int, int, error) {
	if count < 0 {
		return 0, 0, makeError(ErrInvalidArgument, fmt.Sprintf(
			"invalid count %d: must be positive or omitted", count))
	}
	if offset < 0 {
		return 0, 0, makeError(ErrInvalidArgument, fmt.Sprintf(
			"invalid offset %d: must be positive or omitted", offset))
	}
	if offset > 0 {
		offset--
	}
	return count, offset, nil
}

// checkTyped validates a strict typed view request and resolves the
// optional arguments. It returns the element count and the byte index of
// the first element.
func (b *Buffer) checkTyped(width, count, offset int) (int, int, error) {
	count, offset, err := checkArgs(count, offset)
	if err != nil {
		return 0, 0, err
	}

	// a trailing partial element is never exposed
	maxCount := b.validLen / width
	if offset >= maxCount {
		return 0, 0, makeError(ErrOutOfRange, fmt.Sprintf(
			"failed to get elements (%d-bit width) at element offset %d: out of range",
			width*8, offset+1))
	}
	remaining := maxCount - offset
	if count == 0 {
		count = remaining
	}
	if count > remaining {
		return 0, 0, makeError(ErrInsufficientData, fmt.Sprintf(
			"failed to get %d elements (%d-bit width) at element offset %d: insufficient data",
			count, width*8, offset+1))
	}
	return count, offset * width, nil
}
