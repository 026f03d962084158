package entropy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend fills with a constant byte or fails, and records its calls.
type fakeBackend struct {
	name  string
	value byte
	err   error
	calls int
}

func (b *fakeBackend) Name() string {
	return b.name
}

func (b *fakeBackend) Fill(p []byte) error {
	b.calls++
	if b.err != nil {
		return b.err
	}
	for i := range p {
		p[i] = b.value
	}
	return nil
}

func (b *fakeBackend) Close() error {
	return nil
}

func TestFillZeroLength(t *testing.T) {
	b := &fakeBackend{name: "first", err: errors.New("must not be called")}
	s := &Source{backends: []Backend{b}}

	require.NoError(t, s.Fill(nil))
	require.NoError(t, s.Fill([]byte{}))
	assert.Equal(t, 0, b.calls, "zero-length fill must not touch a backend")
}

func TestFillUnsupported(t *testing.T) {
	s := &Source{}

	err := s.Fill(make([]byte, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestFillFallbackOrder(t *testing.T) {
	first := &fakeBackend{name: "first", err: errors.New("broken")}
	second := &fakeBackend{name: "second", value: 0xAB}
	third := &fakeBackend{name: "third", value: 0xCD}
	s := &Source{backends: []Backend{first, second, third}}

	p := make([]byte, 8)
	require.NoError(t, s.Fill(p))
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 8), p)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls, "fallback must stop at the first success")
}

func TestFillMandatoryShortCircuit(t *testing.T) {
	regular := &fakeBackend{name: "regular", value: 0x11}
	mandatory := &fakeBackend{name: "mandatory", value: 0x22}
	s := &Source{
		backends:  []Backend{regular, mandatory},
		mandatory: mandatory,
	}

	p := make([]byte, 4)
	require.NoError(t, s.Fill(p))
	assert.Equal(t, bytes.Repeat([]byte{0x22}, 4), p)
	assert.Equal(t, 0, regular.calls, "mandatory success must short-circuit the chain")
}

func TestFillMandatoryFallsThrough(t *testing.T) {
	regular := &fakeBackend{name: "regular", value: 0x11}
	mandatory := &fakeBackend{name: "mandatory", err: errors.New("compliance source down")}
	s := &Source{
		backends:  []Backend{regular, mandatory},
		mandatory: mandatory,
	}

	p := make([]byte, 4)
	require.NoError(t, s.Fill(p))
	assert.Equal(t, bytes.Repeat([]byte{0x11}, 4), p)
	assert.Equal(t, 1, mandatory.calls, "mandatory backend is tried exactly once")
}

func TestFillAllFail(t *testing.T) {
	first := &fakeBackend{name: "first", err: errors.New("broken")}
	second := &fakeBackend{name: "second", err: errors.New("also broken")}
	s := &Source{backends: []Backend{first, second}}

	err := s.Fill(make([]byte, 4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}

func TestSourceFill(t *testing.T) {
	s := NewSource(Config{})

	p := make([]byte, 4096)
	require.NoError(t, s.Fill(p))
	assert.NotEqual(t, make([]byte, 4096), p, "fill must not leave the buffer zeroed")

	require.NoError(t, s.Close())
	// the source stays usable, handles are reopened on demand
	require.NoError(t, s.Fill(p))
	require.NoError(t, s.Close())
}

func TestSourceUnknownMandatory(t *testing.T) {
	s := NewSource(Config{Mandatory: "does-not-exist"})
	require.Nil(t, s.mandatory)

	p := make([]byte, 16)
	require.NoError(t, s.Fill(p))
	require.NoError(t, s.Close())
}
