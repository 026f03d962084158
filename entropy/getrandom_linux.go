//go:build linux

package entropy

import (
	"golang.org/x/sys/unix"
)

// maxGetrandomChunk is the largest request the getrandom syscall serves in
// one call (2^25 - 1 bytes). Larger requests are chunked.
const maxGetrandomChunk = 33554431

// getrandomBackend obtains bytes directly from the kernel entropy syscall.
// It needs no handle.
type getrandomBackend struct{}

func (b *getrandomBackend) Name() string {
	return "getrandom"
}

func (b *getrandomBackend) Fill(p []byte) error {
	for len(p) > 0 {
		chunk := len(p)
		if chunk > maxGetrandomChunk {
			chunk = maxGetrandomChunk
		}
		n, err := unix.Getrandom(p[:chunk], 0)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return err
		}
		p = p[n:]
	}
	return nil
}

func (b *getrandomBackend) Close() error {
	return nil
}
