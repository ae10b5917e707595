package taxonomy

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonical is the normalized form of one raw classifier string.
type Canonical struct {
	Display string
	Slug    string
}

// Fold lowercases a raw value and collapses hyphens, underscores and
// whitespace runs to single spaces. The SQL predicates apply the exact same
// transform (regexp_replace + lower) so DB matching and Go normalization
// always agree on which rows a canonical value denotes.
func Fold(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	lastSpace := true // leading separators are trimmed
	for _, r := range strings.ToLower(raw) {
		switch r {
		case '-', '_', ' ', '\t', '\n', '\r':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Normalize maps a raw classifier string to its canonical form. ok is false
// only for null-ish input (empty after folding): such listings contribute to
// no bucket rather than an "unknown" bucket. Unrecognized values degrade to a
// Title Cased bucket instead of being dropped, so a new classifier tag is
// visible and correctable rather than invisible.
func Normalize(dim Dimension, raw string) (Canonical, bool) {
	key := Fold(raw)
	if key == "" {
		return Canonical{}, false
	}
	if display, found := synonyms[dim][key]; found {
		return Canonical{Display: display, Slug: Slugify(display)}, true
	}
	display := titleCase(key)
	return Canonical{Display: display, Slug: Slugify(display)}, true
}

// titleCase capitalizes each word of an already-folded key, upper-casing
// clinical acronyms regardless of position.
func titleCase(folded string) string {
	words := strings.Split(folded, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		if acronyms[strings.ToUpper(w)] {
			words[i] = strings.ToUpper(w)
			continue
		}
		// first rune, not first byte: classifier tags are not always ASCII
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// FilterAliasKeys returns the folded keys a filter value should match against
// the store. Filtering by a canonical value (e.g. "Per Diem") must match every
// raw alias that normalizes to it, not just the literal string, otherwise
// filtering and faceting would disagree about which rows a bucket denotes.
func FilterAliasKeys(dim Dimension, value string) []string {
	canon, ok := Normalize(dim, value)
	if !ok {
		return nil
	}
	seen := map[string]bool{}
	var keys []string
	add := func(s string) {
		k := Fold(s)
		if k != "" && !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	add(canon.Display)
	for _, alias := range Aliases(dim, canon.Display) {
		add(alias)
	}
	add(value)
	return keys
}
