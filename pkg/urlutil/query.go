package urlutil

import (
	"net/url"
	"sort"
	"strings"
)

type queryParam struct {
	key   string
	value string
}

// parseQuery splits a raw query into ordered key/value pairs using form
// decoding. Empty segments are skipped; a segment that fails to unescape is
// kept verbatim.
func parseQuery(rawQuery string) []queryParam {
	var params []queryParam
	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(segment, "=")
		params = append(params, queryParam{
			key:   unescapeQuery(rawKey),
			value: unescapeQuery(rawValue),
		})
	}
	return params
}

func unescapeQuery(s string) string {
	unescaped, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return unescaped
}

func encodeQuery(params []queryParam) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// sortQuery orders params by key, then value. Exact duplicates keep their
// relative input order.
func sortQuery(params []queryParam) []queryParam {
	sorted := make([]queryParam, len(params))
	copy(sorted, params)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].key != sorted[j].key {
			return sorted[i].key < sorted[j].key
		}
		return sorted[i].value < sorted[j].value
	})
	return sorted
}

func sameOrder(a, b []queryParam) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
