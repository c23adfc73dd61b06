package jsonld_test

import (
	"errors"
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected []jsonld.Issue
	}{
		{
			name: "invalid id on a standalone node",
			value: jsonld.Node{
				"@context": jsonld.SchemaContext,
				"@type":    "Thing",
				"@id":      "not-a-url",
			},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueInvalidID, Path: "$.@id", Message: "@id must be an absolute http(s) URL when provided"},
			},
		},
		{
			name: "graph member carrying context reported once",
			value: jsonld.Node{
				"@context": jsonld.SchemaContext,
				"@graph":   []any{jsonld.Node{"@context": jsonld.SchemaContext, "@type": "Thing"}},
			},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueNestedContext, Path: "$.@graph[0].@context", Message: "Nodes inside @graph must not include @context"},
			},
		},
		{
			name:  "non-object root",
			value: []any{jsonld.Node{}},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueInvalidRoot, Path: "$", Message: "Expected JSON-LD root to be an object"},
			},
		},
		{
			name:  "foreign context",
			value: jsonld.Node{"@context": "http://schema.org", "@type": "Thing"},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueInvalidContext, Path: "$.@context", Message: "Root @context must be 'https://schema.org' when provided"},
			},
		},
		{
			name:  "absent graph",
			value: jsonld.Node{"@context": jsonld.SchemaContext, "@graph": []any(nil)},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueMissingGraph, Path: "$.@graph", Message: "Graph root must include @graph"},
			},
		},
		{
			name: "graph not a sequence walks the root",
			value: jsonld.Node{
				"@context": jsonld.SchemaContext,
				"@graph":   jsonld.Node{"@id": "relative"},
			},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueInvalidGraph, Path: "$.@graph", Message: "@graph must be an array"},
				{Code: jsonld.IssueInvalidID, Path: "$.@graph.@id", Message: "@id must be an absolute http(s) URL when provided"},
			},
		},
		{
			name: "nested context and type below the root",
			value: jsonld.Node{
				"@type":  "Product",
				"offers": []any{jsonld.Node{"@context": "x", "@type": ""}},
			},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueNestedContext, Path: "$.offers[0].@context", Message: "Nested @context is not allowed; compose context at the root only"},
				{Code: jsonld.IssueInvalidType, Path: "$.offers[0].@type", Message: "@type must be a non-empty string (or string[]) when provided"},
			},
		},
		{
			name: "issues follow sorted key order",
			value: jsonld.Node{
				"b": jsonld.Node{"@id": "ftp://example.com/b"},
				"a": jsonld.Node{"@id": nil},
			},
			expected: []jsonld.Issue{
				{Code: jsonld.IssueInvalidID, Path: "$.a.@id", Message: "@id must be an absolute http(s) URL when provided"},
				{Code: jsonld.IssueInvalidID, Path: "$.b.@id", Message: "@id must be an absolute http(s) URL when provided"},
			},
		},
		{
			name: "valid graph",
			value: jsonld.CreateGraph(
				jsonld.Node{"@id": "https://example.com/#org", "@type": "Organization"},
				jsonld.Node{"@id": "https://example.com/p#product", "@type": []string{"Product", "Thing"}},
			),
		},
		{
			name:  "absent id and type ignored",
			value: jsonld.Node{"@id": (*string)(nil), "@type": []any(nil)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := jsonld.Validate(tt.value, jsonld.DefaultValidateOptions())
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidate_TypeShapes(t *testing.T) {
	tests := []struct {
		name  string
		typ   any
		valid bool
	}{
		{"string", "Thing", true},
		{"string slice", []string{"Product", "Thing"}, true},
		{"any slice", []any{"Product"}, true},
		{"empty string", "", false},
		{"empty sequence", []any{}, false},
		{"sequence with empty member", []any{"Product", ""}, false},
		{"sequence with non-string", []any{"Product", 1}, false},
		{"number", 5, false},
		{"null", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := jsonld.Validate(jsonld.Node{"@type": tt.typ}, jsonld.DefaultValidateOptions())
			if tt.valid {
				assert.Empty(t, issues)
			} else {
				require.Len(t, issues, 1)
				assert.Equal(t, jsonld.IssueInvalidType, issues[0].Code)
			}
		})
	}
}

func TestValidate_OptionsDisableChecks(t *testing.T) {
	value := jsonld.Node{"@id": "nope", "@type": ""}

	issues := jsonld.Validate(value, jsonld.ValidateOptions{})

	assert.Empty(t, issues)
}

func TestValidate_CustomContext(t *testing.T) {
	opts := jsonld.DefaultValidateOptions()
	opts.AllowContext = "https://example.org/context"

	assert.Empty(t, jsonld.Validate(jsonld.Node{"@context": "https://example.org/context"}, opts))
	assert.Len(t, jsonld.Validate(jsonld.Node{"@context": jsonld.SchemaContext}, opts), 1)
}

func TestValidate_RootScalars(t *testing.T) {
	for _, value := range []any{nil, "x", 1, jsonld.Node(nil)} {
		issues := jsonld.Validate(value, jsonld.DefaultValidateOptions())
		require.Len(t, issues, 1)
		assert.Equal(t, jsonld.IssueInvalidRoot, issues[0].Code)
	}
}

func TestAssert(t *testing.T) {
	// Arrange
	value := jsonld.Node{"@id": "x", "@type": ""}

	// Act
	err := jsonld.Assert(value, jsonld.DefaultValidateOptions())

	// Assert
	var validationErr *jsonld.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Issues, 2)
	assert.Equal(t,
		"- (invalid_id) $.@id: @id must be an absolute http(s) URL when provided\n"+
			"- (invalid_type) $.@type: @type must be a non-empty string (or string[]) when provided",
		err.Error(),
	)
	assert.True(t, failure.IsFatal(err))

	assert.NoError(t, jsonld.Assert(jsonld.Node{"@type": "Thing"}, jsonld.DefaultValidateOptions()))
}

func TestFormatIssues_Empty(t *testing.T) {
	assert.Equal(t, "No validation issues.", jsonld.FormatIssues(nil))
}
