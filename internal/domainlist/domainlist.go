// Package domainlist reads newline-delimited domain lists. Lines are
// trimmed and blank lines dropped; no further validation is applied, so
// malformed entries pass through and fail naturally at resolution time.
package domainlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a domain list from path
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening domain list: %w", err)
	}
	defer func() { _ = f.Close() }()

	var domains []string

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		domains = append(domains, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading domain list: %w", err)
	}

	if len(domains) == 0 {
		return nil, ErrEmptyList
	}

	return domains, nil
}
