//go:build unix && !linux

package entropy

// complianceBackend is unused outside of Linux FIPS mode.
const complianceBackend = ""

func platformBackends(cfg Config) []Backend {
	return []Backend{
		&userspaceBackend{},
		newDeviceBackend(cfg.DevicePath),
	}
}

func complianceModeActive() bool {
	return false
}
