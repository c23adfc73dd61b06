package urlutil

// Rule names a single canonicalization step. Rule values are recorded in
// Result.Changes in application order.
type Rule string

const (
	RuleLowercaseHost            Rule = "lowercaseHost"
	RuleRemoveDefaultPort        Rule = "removeDefaultPort"
	RuleStripHash                Rule = "stripHash"
	RuleRemoveTrailingSlash      Rule = "removeTrailingSlash"
	RuleStripKnownTrackingParams Rule = "stripKnownTrackingParams"
	RuleSortQueryParams          Rule = "sortQueryParams"
)

// Options toggles each canonicalization rule independently.
// The zero value disables every rule; use DefaultOptions for the documented defaults.
type Options struct {
	// StripHash removes the fragment. Default: on.
	StripHash bool
	// StripKnownTrackingParams removes query parameters whose key exactly matches
	// a known tracking parameter (utm_*, gclid, fbclid, ...). Default: on.
	StripKnownTrackingParams bool
	// SortQueryParams orders the remaining query parameters by key, then value. Default: on.
	SortQueryParams bool
	// LowercaseHost lowercases the host only, never path or query. Default: on.
	LowercaseHost bool
	// RemoveDefaultPort drops :443 on https and :80 on http. Default: on.
	RemoveDefaultPort bool
	// RemoveTrailingSlash removes every trailing slash from any path other
	// than "/" ("/a//" becomes "/a"), keeping canonicalization idempotent.
	// Default: off.
	RemoveTrailingSlash bool
}

// DefaultOptions returns the canonicalization policy used for node identifiers.
func DefaultOptions() Options {
	return Options{
		StripHash:                true,
		StripKnownTrackingParams: true,
		SortQueryParams:          true,
		LowercaseHost:            true,
		RemoveDefaultPort:        true,
		RemoveTrailingSlash:      false,
	}
}

// Result is the outcome of Canonicalize.
type Result struct {
	// URL is the canonical serialization.
	URL string
	// Changed is true iff URL differs from the re-serialized input.
	Changed bool
	// Changes lists the rules that altered the URL, in application order.
	Changes []Rule
}

// knownTrackingParams is matched case-sensitively against query keys.
var knownTrackingParams = map[string]struct{}{
	"utm_source":   {},
	"utm_medium":   {},
	"utm_campaign": {},
	"utm_term":     {},
	"utm_content":  {},
	"utm_id":       {},
	"gclid":        {},
	"fbclid":       {},
	"msclkid":      {},
	"ttclid":       {},
	"twclid":       {},
	"igshid":       {},
	"mc_cid":       {},
	"mc_eid":       {},
	"_ga":          {},
	"_gac":         {},
	"_gid":         {},
	"_gl":          {},
}

// IsKnownTrackingParam reports whether key is on the tracking denylist.
func IsKnownTrackingParam(key string) bool {
	_, ok := knownTrackingParams[key]
	return ok
}
