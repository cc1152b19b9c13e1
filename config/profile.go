package config

import (
	"fmt"
	"os"

	"github.com/mcuadros/go-defaults"
	"gopkg.in/yaml.v3"
)

// ScanProfile is an optional YAML file bundling the inputs of one scan so
// recurring audits don't need a long flag list.
type ScanProfile struct {
	// InputFile is the newline-delimited domain list
	InputFile string `yaml:"input_file" default:"domains.txt"`
	// OutputCSV is the base name for CSV output (timestamp appended)
	OutputCSV string `yaml:"output_csv" default:"domain_check_results.csv"`
	// OutputHTML is the base name for HTML output (timestamp appended)
	OutputHTML string `yaml:"output_html" default:"domain_check_results.html"`
	// Workers bounds concurrent domain evaluations
	Workers int `yaml:"workers" default:"10"`
	// Nameserver overrides the DNS server, empty for the default
	Nameserver string `yaml:"nameserver"`
	// TimeoutSeconds bounds every individual DNS query
	TimeoutSeconds float64 `yaml:"timeout_seconds" default:"3"`
	// DKIMSelectors is the ordered selector candidate list; omit for the
	// default set, set to [] to skip DKIM probing entirely
	DKIMSelectors []string `yaml:"dkim_selectors"`
}

// LoadProfile reads, defaults, unmarshals, and validates a scan profile
func LoadProfile(path string) (*ScanProfile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scan profile: %w", err)
	}

	profile := &ScanProfile{}
	defaults.SetDefaults(profile)

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("parsing scan profile: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("validating scan profile: %w", err)
	}

	return profile, nil
}

// Validate checks the profile for values the engine cannot run with
func (p *ScanProfile) Validate() error {
	if p.Workers <= 0 {
		return ErrInvalidWorkers
	}

	if p.TimeoutSeconds <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}
