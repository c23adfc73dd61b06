package urlutil

import (
	"net/url"
	"strings"
)

// Canonicalize applies a deterministic normalization to a URL, producing a canonical form.
// It maps equivalent URL spellings to a single canonical representation.
//
// Enabled rules are applied in a fixed order:
//   - Host is lowercased (path and query keep their case)
//   - Default ports are omitted (:80 for http, :443 for https)
//   - Fragment is removed
//   - All trailing slashes are removed (except for root "/")
//   - Known tracking parameters are removed
//   - Remaining query parameters are sorted by key, then value
//
// Properties:
//   - Pure: no state, no memory
//   - Deterministic: same input always produces same output
//   - Idempotent: canonicalizing Result.URL again reports Changed == false
//
// An *UrlError is returned when rawURL is not a valid absolute URL.
func Canonicalize(rawURL string, opts Options) (Result, error) {
	original, err := parseAbsolute(rawURL)
	if err != nil {
		return Result{}, err
	}
	before := original.String()

	// Work on a copy to keep the original serialization intact
	canonical := *original
	var changes []Rule

	if opts.LowercaseHost {
		lowered := lowerASCII(canonical.Host)
		if lowered != canonical.Host {
			canonical.Host = lowered
			changes = append(changes, RuleLowercaseHost)
		}
	}

	if opts.RemoveDefaultPort {
		if port := canonical.Port(); port != "" {
			if (canonical.Scheme == "http" && port == "80") ||
				(canonical.Scheme == "https" && port == "443") {
				canonical.Host = strings.TrimSuffix(canonical.Host, ":"+port)
				changes = append(changes, RuleRemoveDefaultPort)
			}
		}
	}

	if opts.StripHash {
		if canonical.Fragment != "" || canonical.RawFragment != "" {
			canonical.Fragment = ""
			canonical.RawFragment = ""
			changes = append(changes, RuleStripHash)
		}
	}

	if opts.RemoveTrailingSlash {
		if len(canonical.Path) > 1 {
			stripped := stripTrailingSlash(canonical.Path)
			if stripped != canonical.Path {
				canonical.Path = stripped
				if canonical.RawPath != "" {
					canonical.RawPath = stripTrailingSlash(canonical.RawPath)
				}
				changes = append(changes, RuleRemoveTrailingSlash)
			}
		}
	}

	if opts.StripKnownTrackingParams && canonical.RawQuery != "" {
		params := parseQuery(canonical.RawQuery)
		kept := params[:0:0]
		for _, p := range params {
			if IsKnownTrackingParam(p.key) {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) != len(params) {
			canonical.RawQuery = encodeQuery(kept)
			changes = append(changes, RuleStripKnownTrackingParams)
		}
	}

	if opts.SortQueryParams && canonical.RawQuery != "" {
		params := parseQuery(canonical.RawQuery)
		if len(params) > 1 {
			sorted := sortQuery(params)
			if !sameOrder(params, sorted) {
				canonical.RawQuery = encodeQuery(sorted)
				changes = append(changes, RuleSortQueryParams)
			}
		}
	}

	after := canonical.String()
	return Result{
		URL:     after,
		Changed: after != before,
		Changes: changes,
	}, nil
}

// CanonicalizeString is Canonicalize returning only the canonical URL.
func CanonicalizeString(rawURL string, opts Options) (string, error) {
	result, err := Canonicalize(rawURL, opts)
	if err != nil {
		return "", err
	}
	return result.URL, nil
}

// Origin returns "<scheme>://<host>" of a canonicalized rawURL.
func Origin(rawURL string, opts Options) (string, error) {
	canonical, err := CanonicalizeString(rawURL, opts)
	if err != nil {
		return "", err
	}
	return originOf(canonical)
}

func originOf(canonicalURL string) (string, error) {
	u, err := url.Parse(canonicalURL)
	if err != nil || u.Host == "" {
		return "", &UrlError{
			Retryable: false,
			Cause:     ErrCauseMissingOrigin,
			Input:     canonicalURL,
		}
	}
	return u.Scheme + "://" + u.Host, nil
}

// IsAbsoluteHTTP reports whether value parses as an absolute http or https URL.
func IsAbsoluteHTTP(value string) bool {
	u, err := parseAbsolute(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// parseAbsolute parses rawURL and rejects relative references.
// Hierarchical URLs of the special schemes get "/" as their empty path so that
// "https://example.com" and "https://example.com/" serialize identically.
func parseAbsolute(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &UrlError{
			Message:   "empty input",
			Retryable: false,
			Cause:     ErrCauseInvalidURL,
			Input:     rawURL,
		}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &UrlError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseInvalidURL,
			Input:     rawURL,
		}
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return nil, &UrlError{
			Message:   "not an absolute URL",
			Retryable: false,
			Cause:     ErrCauseInvalidURL,
			Input:     rawURL,
		}
	}
	if isSpecialScheme(u.Scheme) && u.Host != "" && u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}
	return u, nil
}

func isSpecialScheme(scheme string) bool {
	switch scheme {
	case "http", "https", "ws", "wss", "ftp":
		return true
	default:
		return false
	}
}

// lowerASCII converts ASCII characters to lowercase without allocating.
// This is faster than strings.ToLower for ASCII-only strings.
func lowerASCII(s string) string {
	var needsLower bool
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsLower = true
			break
		}
	}
	if !needsLower {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// stripTrailingSlash removes every trailing slash from a path, keeping "/".
func stripTrailingSlash(path string) string {
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}
