package emailauth

import "strings"

// dmarcPolicies are the p= values accepted by the DMARC heuristic
var dmarcPolicies = []string{"p=none", "p=quarantine", "p=reject"}

// IsValidDMARC reports whether a TXT record looks like a usable DMARC record.
// The heuristic requires the v=DMARC1 version tag and one of the three
// enforcement policies; alignment and reporting tags are not parsed.
func IsValidDMARC(record string) bool {
	lower := strings.ToLower(record)
	if !strings.Contains(lower, "v=dmarc1") {
		return false
	}

	for _, policy := range dmarcPolicies {
		if strings.Contains(lower, policy) {
			return true
		}
	}

	return false
}
