package emailauth

import "strings"

// IsValidSPF reports whether a TXT record looks like a usable SPF record.
// The heuristic requires the v=spf1 version tag and an all directive
// anywhere in the record; mechanism syntax is not parsed.
func IsValidSPF(record string) bool {
	lower := strings.ToLower(record)
	return strings.Contains(lower, "v=spf1") && strings.Contains(lower, "all")
}
