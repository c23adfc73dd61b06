package jsonld_test

import (
	"encoding/json"
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToString(t *testing.T) {
	price := json.Number("19.99")
	var missing *int

	tests := []struct {
		name     string
		value    any
		opts     jsonld.StringifyOptions
		expected string
	}{
		{
			name:     "html escaping by default",
			value:    jsonld.Node{"name": "</script><b>&"},
			opts:     jsonld.DefaultStringifyOptions(),
			expected: `{"name":"\u003c/script\u003e\u003cb\u003e\u0026"}`,
		},
		{
			name:     "line and paragraph separators",
			value:    jsonld.Node{"text": "a\u2028b\u2029c"},
			opts:     jsonld.DefaultStringifyOptions(),
			expected: `{"text":"a\u2028b\u2029c"}`,
		},
		{
			name:     "escaping disabled",
			value:    jsonld.Node{"name": "a<b"},
			opts:     jsonld.StringifyOptions{},
			expected: `{"name":"a<b"}`,
		},
		{
			name:     "pretty output",
			value:    jsonld.Node{"@type": "Thing", "name": "x"},
			opts:     jsonld.StringifyOptions{Pretty: true},
			expected: "{\n  \"@type\": \"Thing\",\n  \"name\": \"x\"\n}",
		},
		{
			name: "absent values dropped, null kept",
			value: jsonld.Node{
				"a": []any(nil),
				"b": nil,
				"c": missing,
				"d": jsonld.Node(nil),
				"e": price,
			},
			opts:     jsonld.DefaultStringifyOptions(),
			expected: `{"b":null,"e":19.99}`,
		},
		{
			name:     "empty graph",
			value:    jsonld.CreateGraph(),
			opts:     jsonld.DefaultStringifyOptions(),
			expected: `{"@context":"https://schema.org","@graph":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsonld.ToString(tt.value, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToString_Unserializable(t *testing.T) {
	_, err := jsonld.ToString(jsonld.Node{"bad": make(chan int)}, jsonld.DefaultStringifyOptions())

	var nodeErr *jsonld.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, jsonld.ErrCauseUnserializable, nodeErr.Cause)
}

func TestToScriptTag(t *testing.T) {
	tests := []struct {
		name     string
		opts     jsonld.ScriptTagOptions
		expected string
	}{
		{
			name:     "no attributes",
			expected: `<script type="application/ld+json">{"@type":"Thing","name":"\u003c/script\u003e"}</script>`,
		},
		{
			name:     "id and nonce",
			opts:     jsonld.ScriptTagOptions{ID: "ld-product", Nonce: "abc123"},
			expected: `<script id="ld-product" nonce="abc123" type="application/ld+json">{"@type":"Thing","name":"\u003c/script\u003e"}</script>`,
		},
		{
			name:     "attribute values escaped",
			opts:     jsonld.ScriptTagOptions{ID: `a"b`},
			expected: `<script id="a&#34;b" type="application/ld+json">{"@type":"Thing","name":"\u003c/script\u003e"}</script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsonld.ToScriptTag(jsonld.Node{"@type": "Thing", "name": "</script>"}, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
