package manifest

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/rohmanhakim/jsonld-kit/pkg/fileutil"
	"gopkg.in/yaml.v3"
)

// Load reads a JSON or YAML manifest from path. YAML is chosen by the
// .yaml or .yml extension.
func Load(path string) (Manifest, error) {
	data, readErr := fileutil.ReadFile(path)
	if readErr != nil {
		return Manifest{}, &ManifestError{
			Message:   readErr.Error(),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      path,
			Err:       readErr,
		}
	}
	m, err := Decode(data, fileutil.IsYAML(path))
	if err != nil {
		var manifestErr *ManifestError
		if errors.As(err, &manifestErr) {
			manifestErr.Path = path
		}
		return Manifest{}, err
	}
	return m, nil
}

// Decode parses, schema-checks and decodes a manifest document.
func Decode(data []byte, isYAML bool) (Manifest, error) {
	doc := data
	if isYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return Manifest{}, &ManifestError{
				Message:   err.Error(),
				Retryable: false,
				Cause:     ErrCauseParseFailure,
				Err:       err,
			}
		}
		doc = converted
	}

	violations, err := validateSchema(doc)
	if err != nil {
		return Manifest{}, &ManifestError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseParseFailure,
			Err:       err,
		}
	}
	if len(violations) > 0 {
		return Manifest{}, &ManifestError{
			Retryable:  false,
			Cause:      ErrCauseSchemaMismatch,
			Violations: violations,
		}
	}

	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, &ManifestError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseDecodeFailure,
			Err:       err,
		}
	}
	return m, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share the
// schema check and the JSON field names.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeYAML(doc))
}

// normalizeYAML turns map[any]any, which JSON cannot encode, into
// map[string]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, element := range t {
			t[k] = normalizeYAML(element)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, element := range t {
			out[yamlKey(k)] = normalizeYAML(element)
		}
		return out
	case []any:
		for i, element := range t {
			t[i] = normalizeYAML(element)
		}
		return t
	default:
		return v
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	out, err := json.Marshal(k)
	if err != nil {
		return ""
	}
	return string(bytes.Trim(out, `"`))
}
