package schemaorg_test

import (
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageReview(url, author, body string) schemaorg.Review {
	return schemaorg.Review{
		URL:           url,
		Author:        schemaorg.EntityRef{Name: author},
		DatePublished: "2024-03-01",
		ReviewBody:    body,
		Rating:        4,
	}
}

func TestKeyReviews(t *testing.T) {
	const page = "https://example.com/p"
	explicit := pageReview(page, "Cid", "Meh")
	explicit.Key = "cid"
	pinned := pageReview(page, "Dee", "Great")
	pinned.SchemaID = "https://example.com/p#dee"

	tests := []struct {
		name     string
		input    []schemaorg.Review
		expected []string
	}{
		{
			name:     "single review keeps the plain id",
			input:    []schemaorg.Review{pageReview(page, "Ann", "Good")},
			expected: []string{""},
		},
		{
			name:  "reviews sharing a url are keyed",
			input: []schemaorg.Review{pageReview(page, "Ann", "Good"), pageReview(page, "Bob", "Bad")},
			expected: []string{
				nodeid.HashKey("Ann", "2024-03-01", "Good"),
				nodeid.HashKey("Bob", "2024-03-01", "Bad"),
			},
		},
		{
			name:     "different urls need no key",
			input:    []schemaorg.Review{pageReview(page, "Ann", "Good"), pageReview("https://example.com/q", "Bob", "Bad")},
			expected: []string{"", ""},
		},
		{
			name:     "explicit key and schema id are left alone",
			input:    []schemaorg.Review{explicit, pinned, pageReview(page, "Ann", "Good")},
			expected: []string{"cid", "", ""},
		},
		{
			name:     "reviews without url are never keyed",
			input:    []schemaorg.Review{pageReview("", "Ann", "Good"), pageReview("", "Bob", "Bad")},
			expected: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := schemaorg.KeyReviews(tt.input)

			// Assert
			require.Len(t, got, len(tt.expected))
			for i, key := range tt.expected {
				assert.Equal(t, key, got[i].Key)
			}
			for _, r := range tt.input {
				if r.Key != "cid" {
					assert.Empty(t, r.Key, "input must not be modified")
				}
			}
		})
	}
}

func TestMapProduct_ReviewsOnOnePageKeepDistinctIDs(t *testing.T) {
	// Arrange
	in := sampleProduct()
	in.Reviews = []schemaorg.Review{
		pageReview("https://example.com/p", "Ann", "Good"),
		pageReview("https://example.com/p", "Bob", "Bad"),
	}

	// Act
	n, err := newMapper().MapProduct(in)

	// Assert
	require.NoError(t, err)
	reviews := children(t, n, "review")
	require.Len(t, reviews, 2)
	assert.Equal(t, "https://example.com/p#review-"+nodeid.HashKey("Ann", "2024-03-01", "Good"), reviews[0]["@id"])
	assert.NotEqual(t, reviews[0]["@id"], reviews[1]["@id"])
}

func TestMapReview_ExplicitKey(t *testing.T) {
	r := pageReview("https://Example.com/p?utm_source=x", "Ann", "Good")
	r.Key = "top"

	n, err := newMapper().MapReview(r)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/p#review-top", n["@id"])
}
