// Package report renders the engine's result collection as delimited and
// HTML output files. Filenames carry a timestamp so repeated scans never
// overwrite earlier reports.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theopenlane/mailaudit/internal/types"
)

// timestampLayout is appended to output basenames
const timestampLayout = "20060102_150405"

// csvHeader fixes the column order of the tabular output
var csvHeader = []string{
	"Domain",
	"SPF",
	"DKIM",
	"DMARC",
	"Vulnerable to Spoofing",
	"Potential Subdomain Takeover",
}

// timestampedPath derives the output filename from a base path, replacing
// its extension with a timestamp suffix plus ext
func timestampedPath(base, ext string, now time.Time) string {
	trimmed := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s%s", trimmed, now.Format(timestampLayout), ext)
}

// WriteCSV writes the scan results as a timestamped CSV file and returns
// the generated filename
func WriteCSV(rep *types.ScanReport, basePath string) (string, error) {
	if rep == nil {
		return "", ErrNilReport
	}

	path := timestampedPath(basePath, ".csv", time.Now())

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating csv report: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}

	for _, result := range rep.Results {
		row := []string{
			result.Domain,
			string(result.SPF),
			string(result.DKIM),
			string(result.DMARC),
			string(result.VulnerableToSpoofing),
			string(result.PotentialSubdomainTakeover),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv report: %w", err)
	}

	return path, nil
}
