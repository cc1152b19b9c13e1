package emailauth

import "strings"

// IsValidDKIM reports whether a TXT record looks like a published DKIM key.
// The heuristic requires the v=DKIM1 version tag and a p= public-key tag;
// the key material itself is not validated.
func IsValidDKIM(record string) bool {
	lower := strings.ToLower(record)
	return strings.Contains(lower, "v=dkim1") && strings.Contains(lower, "p=")
}
