package config

import "errors"

var (
	// ErrProfileNotFound is returned when the scan profile file does not exist
	ErrProfileNotFound = errors.New("scan profile file not found")
	// ErrInvalidWorkers is returned when a profile configures a non-positive worker count
	ErrInvalidWorkers = errors.New("workers must be greater than zero")
	// ErrInvalidTimeout is returned when a profile configures a non-positive query timeout
	ErrInvalidTimeout = errors.New("query timeout must be greater than zero")
)
