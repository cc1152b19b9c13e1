package report

import "errors"

var (
	// ErrNilReport is returned when a nil scan report is passed to a writer
	ErrNilReport = errors.New("scan report must not be nil")
)
