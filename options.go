package secrandom

import (
	"github.com/secrandom/secrandom/entropy"
)

// An Option adjusts how a session resolves its entropy backends.
type Option func(*entropy.Config)

// WithDevicePath substitutes the path read by the file-backed entropy
// device backend, for testing or for systems using a different device
// name. The rest of the backend chain is unaffected.
func WithDevicePath(path string) Option {
	return func(cfg *entropy.Config) {
		cfg.DevicePath = path
	}
}

// WithMandatory forces the named backend to be tried first; when it
// succeeds no other backend is consulted. An unknown name is logged and
// ignored.
func WithMandatory(name string) Option {
	return func(cfg *entropy.Config) {
		cfg.Mandatory = name
	}
}
