// Package entropy resolves the best available operating system entropy
// primitive and fills caller buffers from it.
//
// A Source tries its backends in a fixed priority order: a mandatory
// backend first when one is active, then the userspace CSPRNG maintained
// by the runtime, then the direct kernel entropy syscall, then the
// file-backed entropy device through a cached descriptor. The first
// backend that succeeds ends the operation.
package entropy

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "entropy")

// Config adjusts how a Source resolves its backends.
type Config struct {
	// DevicePath overrides the path read by the file-backed entropy
	// device backend. Empty means the platform default.
	DevicePath string

	// Mandatory names the backend that must be tried first. When it
	// succeeds, no other backend is consulted. Empty means no mandatory
	// backend, unless the platform is in a compliance mode that promotes
	// one (see complianceModeActive).
	Mandatory string
}

// Source wraps the platform's entropy backends behind one Fill operation.
// At most one cached handle exists per Source and is never shared across
// instances. A Source is not safe for concurrent use.
type Source struct {
	backends  []Backend
	mandatory Backend
}

// NewSource resolves the platform backend chain. The mandatory backend is
// taken from cfg, or promoted automatically when the host runs in a
// compliance mode.
func NewSource(cfg Config) *Source {
	s := &Source{backends: platformBackends(cfg)}

	name := cfg.Mandatory
	if name == "" && complianceModeActive() {
		name = complianceBackend
		log.Infof("compliance mode active, %s backend is mandatory", name)
	}
	if name != "" {
		for _, b := range s.backends {
			if b.Name() == name {
				s.mandatory = b
				break
			}
		}
		if s.mandatory == nil {
			log.Warnf("mandatory backend %q is not available on this platform", name)
		}
	}

	return s
}

// Fill fills all of p with random bytes or fails. A failure invalidates
// any fresh content in p. Filling zero bytes succeeds without touching a
// backend.
func (s *Source) Fill(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if len(s.backends) == 0 {
		return makeError(ErrUnsupported, "no entropy backend available on this platform")
	}

	var errs *multierror.Error
	if s.mandatory != nil {
		err := s.mandatory.Fill(p)
		if err == nil {
			countFill(s.mandatory.Name(), len(p))
			return nil
		}
		countFailure(s.mandatory.Name())
		log.Warnf("mandatory backend %s failed: %s", s.mandatory.Name(), err)
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", s.mandatory.Name(), err))
	}

	for _, b := range s.backends {
		if b == s.mandatory {
			continue
		}
		err := b.Fill(p)
		if err == nil {
			countFill(b.Name(), len(p))
			return nil
		}
		countFailure(b.Name())
		log.Debugf("backend %s failed, falling back: %s", b.Name(), err)
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", b.Name(), err))
	}

	return makeError(ErrIO, fmt.Sprintf("all entropy backends failed: %s", errs))
}

// Close releases any handle cached by a backend. It is idempotent; a
// later Fill reopens what it needs.
func (s *Source) Close() error {
	var errs *multierror.Error
	for _, b := range s.backends {
		if err := b.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", b.Name(), err))
		}
	}
	return errs.ErrorOrNil()
}
