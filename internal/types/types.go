package types

import "time"

// Status is the verdict assigned to a single check or derived field
type Status string

const (
	// StatusPass indicates a qualifying record was found
	StatusPass Status = "Pass"
	// StatusFail indicates no qualifying record was found
	StatusFail Status = "Fail"
	// StatusUnknown indicates the check could not reach a verdict
	StatusUnknown Status = "Unknown"
	// StatusError indicates the whole evaluation for the domain failed
	StatusError Status = "Error"
	// StatusYes marks a derived condition as present
	StatusYes Status = "Yes"
	// StatusNo marks a derived condition as absent
	StatusNo Status = "No"
)

// DomainResult holds the complete verdict set for one input domain
type DomainResult struct {
	// Domain is the input line exactly as supplied, trimmed only
	Domain string `json:"domain" example:"example.com" description:"The domain that was checked"`
	// SPF is Pass/Fail/Error for the apex TXT SPF lookup
	SPF Status `json:"spf" example:"Pass" description:"SPF record verdict"`
	// DKIM is Pass/Fail/Unknown/Error across the configured selector sweep
	DKIM Status `json:"dkim" example:"Unknown" description:"DKIM selector sweep verdict"`
	// DMARC is Pass/Fail/Error for the _dmarc TXT lookup
	DMARC Status `json:"dmarc" example:"Fail" description:"DMARC record verdict"`
	// VulnerableToSpoofing is No only when both SPF and DMARC pass
	VulnerableToSpoofing Status `json:"vulnerable_to_spoofing" example:"Yes" description:"Derived spoofing exposure verdict"`
	// PotentialSubdomainTakeover is Yes only on a definitive NXDOMAIN for the apex A record
	PotentialSubdomainTakeover Status `json:"potential_subdomain_takeover" example:"Unknown" description:"Dangling-record heuristic verdict"`
}

// ErrorResult returns the all-Error result synthesized when an evaluation fails
func ErrorResult(domain string) DomainResult {
	return DomainResult{
		Domain:                     domain,
		SPF:                        StatusError,
		DKIM:                       StatusError,
		DMARC:                      StatusError,
		VulnerableToSpoofing:       StatusError,
		PotentialSubdomainTakeover: StatusError,
	}
}

// Progress is emitted once per completed domain evaluation
type Progress struct {
	// Domain identifies the evaluation that just completed
	Domain string `json:"domain"`
	// Completed is the running count of finished evaluations
	Completed int `json:"completed"`
	// Total is the number of submitted evaluations
	Total int `json:"total"`
	// Percent is Completed/Total expressed as a percentage
	Percent float64 `json:"percent"`
}

// ScanReport is the full output of one scan
type ScanReport struct {
	// ScanID is a ULID identifying this scan run
	ScanID string `json:"scan_id" example:"01JH3Y9KQZ4R8WV2M6T1B5XD7E"`
	// StartedAt is the wall-clock start of the scan
	StartedAt time.Time `json:"started_at"`
	// CompletedAt is the wall-clock end of the scan
	CompletedAt time.Time `json:"completed_at"`
	// DurationSeconds is CompletedAt minus StartedAt in seconds
	DurationSeconds float64 `json:"duration_seconds"`
	// Results holds one entry per input domain, in completion order
	Results []DomainResult `json:"results"`
}
