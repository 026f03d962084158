//go:build unix

package entropy

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// DefaultDevicePath is the entropy device read by the file-backed backend
// when no override is given.
const DefaultDevicePath = "/dev/urandom"

// deviceBackend reads the file-backed entropy device through a cached file
// descriptor. The descriptor is opened lazily with O_CLOEXEC, reused across
// Fill calls and invalidated when a read through it fails unrecoverably, so
// that the next Fill reopens it. An interrupted read is retried without
// invalidating the descriptor.
type deviceBackend struct {
	path string
	fd   int
}

func newDeviceBackend(path string) *deviceBackend {
	if path == "" {
		path = DefaultDevicePath
	}
	return &deviceBackend{
		path: path,
		fd:   -1,
	}
}

func (b *deviceBackend) Name() string {
	return "device"
}

func (b *deviceBackend) Fill(p []byte) error {
	if b.fd < 0 {
		fd, err := unix.Open(b.path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err != nil {
			return fmt.Errorf("open %s: %w", b.path, err)
		}
		b.fd = fd
		countDeviceOpen()
	}

	for len(p) > 0 {
		n, err := unix.Read(b.fd, p)
		switch {
		case err == unix.EINTR:
			// interrupted, retry with the same descriptor
			continue
		case err != nil:
			b.invalidate()
			return fmt.Errorf("read %s: %w", b.path, err)
		case n == 0:
			// end of stream must not happen on an entropy device
			b.invalidate()
			return fmt.Errorf("read %s: unexpected end of stream", b.path)
		}
		p = p[n:]
	}
	return nil
}

func (b *deviceBackend) invalidate() {
	_ = unix.Close(b.fd)
	b.fd = -1
	log.Warnf("entropy device %s handle invalidated", b.path)
}

func (b *deviceBackend) Close() error {
	if b.fd < 0 {
		return nil
	}
	err := unix.Close(b.fd)
	b.fd = -1
	return err
}
