//go:build windows

package entropy

// complianceBackend is unused outside of Linux FIPS mode.
const complianceBackend = ""

func platformBackends(cfg Config) []Backend {
	return []Backend{
		&userspaceBackend{},
		&winCryptoBackend{},
	}
}

func complianceModeActive() bool {
	return false
}
