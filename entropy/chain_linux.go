//go:build linux

package entropy

import (
	"bytes"
	"os"
)

// complianceBackend is promoted to mandatory when the kernel enforces FIPS
// mode: the kernel entropy syscall is the validated source there.
const complianceBackend = "getrandom"

const fipsEnabledPath = "/proc/sys/crypto/fips_enabled"

func platformBackends(cfg Config) []Backend {
	return []Backend{
		&userspaceBackend{},
		&getrandomBackend{},
		newDeviceBackend(cfg.DevicePath),
	}
}

// complianceModeActive reports whether the kernel runs in FIPS mode.
func complianceModeActive() bool {
	data, err := os.ReadFile(fipsEnabledPath)
	if err != nil {
		return false
	}
	data = bytes.TrimSpace(data)
	return len(data) == 1 && data[0] == '1'
}
