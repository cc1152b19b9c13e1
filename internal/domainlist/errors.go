package domainlist

import "errors"

var (
	// ErrEmptyList is returned when the input file contains no domains
	ErrEmptyList = errors.New("no domains found in input file")
)
