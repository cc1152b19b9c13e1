package scanner

import "errors"

var (
	// ErrNoDomains is returned when a scan is requested with an empty domain list
	ErrNoDomains = errors.New("no domains to scan")
)
