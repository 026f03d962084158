//go:build windows

package entropy

import (
	"golang.org/x/sys/windows"
)

// maxWinCryptoChunk bounds a single request to the system RNG, which takes
// a 32 bit length.
const maxWinCryptoChunk = 1 << 25

// winCryptoBackend fills from the system preferred RNG of the Windows
// crypto API. It needs no handle.
type winCryptoBackend struct{}

func (b *winCryptoBackend) Name() string {
	return "wincrypto"
}

func (b *winCryptoBackend) Fill(p []byte) error {
	for len(p) > 0 {
		chunk := len(p)
		if chunk > maxWinCryptoChunk {
			chunk = maxWinCryptoChunk
		}
		if err := windows.RtlGenRandom(p[:chunk]); err != nil {
			return err
		}
		p = p[chunk:]
	}
	return nil
}

func (b *winCryptoBackend) Close() error {
	return nil
}
