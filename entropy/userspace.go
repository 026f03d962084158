package entropy

import (
	cryptorand "crypto/rand"
	"io"
)

// maxUserspaceChunk bounds a single read from the runtime CSPRNG.
const maxUserspaceChunk = 1 << 20

// userspaceBackend reads from the cryptographically secure random source
// maintained by the runtime. It needs no handle and is available on every
// platform.
type userspaceBackend struct{}

func (b *userspaceBackend) Name() string {
	return "userspace"
}

func (b *userspaceBackend) Fill(p []byte) error {
	for len(p) > 0 {
		chunk := len(p)
		if chunk > maxUserspaceChunk {
			chunk = maxUserspaceChunk
		}
		if _, err := io.ReadFull(cryptorand.Reader, p[:chunk]); err != nil {
			return err
		}
		p = p[chunk:]
	}
	return nil
}

func (b *userspaceBackend) Close() error {
	return nil
}
