//go:build unix

package entropy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeviceFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestDeviceBackendDefaultPath(t *testing.T) {
	b := newDeviceBackend("")
	assert.Equal(t, DefaultDevicePath, b.path)
	assert.Equal(t, -1, b.fd)
}

func TestDeviceBackendCachesHandle(t *testing.T) {
	data := []byte("0123456789abcdefghijklmnopqrstuv")
	b := newDeviceBackend(writeDeviceFile(t, data))

	p := make([]byte, 16)
	require.NoError(t, b.Fill(p))
	assert.Equal(t, data[:16], p)
	require.GreaterOrEqual(t, b.fd, 0, "descriptor must be cached after the first fill")

	fd := b.fd
	require.NoError(t, b.Fill(p))
	assert.Equal(t, data[16:32], p, "the cached descriptor keeps its read position")
	assert.Equal(t, fd, b.fd, "a healthy descriptor is reused")

	require.NoError(t, b.Close())
	assert.Equal(t, -1, b.fd)
	require.NoError(t, b.Close())
}

func TestDeviceBackendEndOfStream(t *testing.T) {
	b := newDeviceBackend(writeDeviceFile(t, []byte{1, 2, 3, 4}))

	err := b.Fill(make([]byte, 8))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected end of stream")
	assert.Equal(t, -1, b.fd, "the handle must be invalidated on end of stream")

	// the next fill reopens the device
	p := make([]byte, 4)
	require.NoError(t, b.Fill(p))
	assert.Equal(t, []byte{1, 2, 3, 4}, p)
	require.NoError(t, b.Close())
}

func TestDeviceBackendOpenFailure(t *testing.T) {
	b := newDeviceBackend(filepath.Join(t.TempDir(), "missing"))

	err := b.Fill(make([]byte, 4))
	require.Error(t, err)
	assert.Equal(t, -1, b.fd)
}

func TestDeviceBackendInChain(t *testing.T) {
	data := []byte("deterministic entropy for tests!")
	s := NewSource(Config{
		DevicePath: writeDeviceFile(t, data),
		Mandatory:  "device",
	})
	require.NotNil(t, s.mandatory)

	p := make([]byte, 8)
	require.NoError(t, s.Fill(p))
	assert.Equal(t, data[:8], p)
	require.NoError(t, s.Close())
}
