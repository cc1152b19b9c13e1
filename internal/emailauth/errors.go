package emailauth

import "errors"

var (
	// ErrEmptyDomain is returned when an empty domain is submitted for evaluation
	ErrEmptyDomain = errors.New("domain must not be empty")
)
