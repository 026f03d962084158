// Package secrandom supplies cryptographically secure random bytes per
// session and lets the caller reinterpret the captured block as arrays of
// fixed-width unsigned integers without re-reading the entropy source.
//
// A session pairs one entropy source resolution with one owned byte
// buffer: open a session, refill it, slice the result as bytes or as
// host-endian u8/u16/u32 views any number of times, close the session.
// There is no pseudo-random generation anywhere; every byte originates
// from an operating system entropy call.
package secrandom

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tevino/abool"

	"github.com/secrandom/secrandom/entropy"
	"github.com/secrandom/secrandom/randbuf"
)

var log = logrus.WithField("prefix", "secrandom")

// Session pairs one entropy source with one random buffer. A session is
// not safe for concurrent use; confine it to one goroutine or guard it
// with an external mutex. Every call blocks until bytes are obtained or a
// definitive failure occurs.
type Session struct {
	id     uuid.UUID
	src    *entropy.Source
	buf    *randbuf.Buffer
	closed *abool.AtomicBool
}

// Open resolves the platform entropy backend chain and returns a fresh
// session.
func Open(opts ...Option) (*Session, error) {
	var cfg entropy.Config
	for _, opt := range opts {
		opt(&cfg)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to create session id: %w", err)
	}

	s := &Session{
		id:     id,
		src:    entropy.NewSource(cfg),
		buf:    randbuf.New(),
		closed: abool.New(),
	}
	log.Debugf("session %s opened", s.id)
	return s, nil
}

// ID returns the unique identifier of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Refill obtains n fresh bytes from the entropy source, replacing the
// result of any prior refill. On failure the previous valid region stays
// current. Returns the number of bytes now valid.
func (s *Session) Refill(n int) (int, error) {
	if s.closed.IsSet() {
		return 0, makeError(ErrNotOpen, "refill on closed session")
	}
	return s.buf.Refill(s.src.Fill, n)
}

// Bytes returns count bytes of the last refill starting at the 1-based
// offset, 0 meaning "not given". Over-requests are clamped; an offset past
// the valid region yields (nil, nil). The returned slice is only valid
// until the next Refill.
func (s *Session) Bytes(count, offset int) ([]byte, error) {
	if s.closed.IsSet() {
		return nil, makeError(ErrNotOpen, "bytes on closed session")
	}
	return s.buf.Bytes(count, offset)
}

// U8 returns count unsigned 8 bit integers of the last refill starting at
// the 1-based element offset. Strict: requests beyond the available
// elements fail instead of clamping.
func (s *Session) U8(count, offset int) ([]uint8, error) {
	if s.closed.IsSet() {
		return nil, makeError(ErrNotOpen, "u8 on closed session")
	}
	return s.buf.U8(count, offset)
}

// U16 returns count unsigned 16 bit integers of the last refill, decoded
// in host-native byte order. Strict like U8.
func (s *Session) U16(count, offset int) ([]uint16, error) {
	if s.closed.IsSet() {
		return nil, makeError(ErrNotOpen, "u16 on closed session")
	}
	return s.buf.U16(count, offset)
}

// U32 returns count unsigned 32 bit integers of the last refill, decoded
// in host-native byte order. Strict like U8.
func (s *Session) U32(count, offset int) ([]uint32, error) {
	if s.closed.IsSet() {
		return nil, makeError(ErrNotOpen, "u32 on closed session")
	}
	return s.buf.U32(count, offset)
}

// Close releases the buffer storage and any cached backend handle. It is
// idempotent; closing an already closed session is a no-op success. A
// closed session fails every other operation with the not-open kind, it
// never reopens transparently.
func (s *Session) Close() error {
	if !s.closed.SetToIf(false, true) {
		return nil
	}
	s.buf.Release()
	err := s.src.Close()
	log.Debugf("session %s closed", s.id)
	return err
}
