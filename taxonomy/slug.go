package taxonomy

import "strings"

// Slugify derives the URL slug for a canonical display name: lowercase,
// spaces and ampersands become hyphens, everything else non-alphanumeric is
// stripped, hyphen runs collapse. Deterministic, so slugs computed during
// aggregation and during inbound URL resolution are always identical.
func Slugify(display string) string {
	var b strings.Builder
	b.Grow(len(display))
	lastHyphen := true // trims leading hyphens
	for _, r := range strings.ToLower(display) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '&' || r == '-' || r == '_' || r == '\t':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
