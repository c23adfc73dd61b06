package jsonld

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// ToString serializes value as JSON text. Absent values are dropped first.
// Object keys are emitted in sorted order, so output is deterministic.
//
// With EscapeForHTML, <, > and & are written as \u003c, \u003e and \u0026.
// U+2028 and U+2029 are always written as \u2028 and \u2029.
func ToString(value any, opts StringifyOptions) (string, error) {
	cleaned := Clean(value, CleanOptions{})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(opts.EscapeForHTML)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(cleaned); err != nil {
		return "", &NodeError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseUnserializable,
		}
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ToScriptTag renders value as an application/ld+json script element.
// The payload is compact and HTML-escaped; attribute values are escaped.
func ToScriptTag(value any, opts ScriptTagOptions) (string, error) {
	payload, err := ToString(value, StringifyOptions{Pretty: false, EscapeForHTML: true})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<script")
	if opts.ID != "" {
		fmt.Fprintf(&b, ` id="%s"`, html.EscapeString(opts.ID))
	}
	if opts.Nonce != "" {
		fmt.Fprintf(&b, ` nonce="%s"`, html.EscapeString(opts.Nonce))
	}
	b.WriteString(` type="application/ld+json">`)
	b.WriteString(payload)
	b.WriteString("</script>")
	return b.String(), nil
}
