package taxonomy

import "sync"

// ── Slug → canonical reverse index ───────────────────────────────────────────
// The static index covers the taxonomy tables and is immutable after init.
// Unknown values that surfaced through the Title Case fallback are remembered
// in a separate mutable index so their URLs resolve too.

var staticSlugs = map[Dimension]map[string]string{}

var (
	dynMu    sync.RWMutex
	dynSlugs = map[Dimension]map[string]string{}
)

func initResolver() {
	for dim, entries := range entriesByDimension {
		staticSlugs[dim] = make(map[string]string)
		for _, e := range entries {
			staticSlugs[dim][Slugify(e.Display)] = e.Display
		}
	}
}

// Resolve maps an inbound URL slug back to the canonical display name it was
// derived from. ok is false when the slug matches nothing, in which case the
// caller should 404 rather than render an empty-result page.
func Resolve(dim Dimension, slug string) (string, bool) {
	if display, found := staticSlugs[dim][slug]; found {
		return display, true
	}
	dynMu.RLock()
	defer dynMu.RUnlock()
	if display, found := dynSlugs[dim][slug]; found {
		return display, true
	}
	return "", false
}

// Remember registers a dynamically-seen canonical value (a Title Case
// fallback bucket) so its slug resolves on later requests.
func Remember(dim Dimension, display string) {
	slug := Slugify(display)
	if _, found := staticSlugs[dim][slug]; found {
		return
	}
	dynMu.Lock()
	defer dynMu.Unlock()
	if dynSlugs[dim] == nil {
		dynSlugs[dim] = make(map[string]string)
	}
	dynSlugs[dim][slug] = display
}
