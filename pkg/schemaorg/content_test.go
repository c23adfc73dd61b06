package schemaorg_test

import (
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapArticle(t *testing.T) {
	// Arrange
	in := schemaorg.Article{
		Headline:      "Hello",
		Description:   "First post",
		URL:           "https://example.com/blog/hello/",
		Language:      "en",
		DatePublished: "2024-01-01",
		DateModified:  "2024-01-02",
		Author:        schemaorg.EntityRef{Name: "Jane", URL: "https://example.com/jane"},
		Publisher: &schemaorg.EntityRef{
			Type:  "Organization",
			ID:    "https://example.com/#org",
			Name:  "Example",
			Image: &schemaorg.Image{URL: "https://example.com/logo.png", AltText: "Logo"},
		},
		About:       []schemaorg.EntityRef{{Name: "Go", URL: "https://go.dev"}},
		ArticleBody: "Body text",
	}

	// Act
	n, err := newMapper().MapArticle(in)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Article", n["@type"])
	assert.Equal(t, "https://example.com/blog/hello/#article", n["@id"])
	assert.Equal(t, "en", n["inLanguage"])
	assert.Equal(t, "Body text", n["articleBody"])

	author := child(t, n, "author")
	assert.Equal(t, "Person", author["@type"])
	assert.NotContains(t, author, "@id")

	publisher := child(t, n, "publisher")
	assert.Equal(t, "Organization", publisher["@type"])
	assert.Equal(t, "https://example.com/#org", publisher["@id"])
	assert.Equal(t, "Logo", child(t, publisher, "logo")["caption"])

	about := children(t, n, "about")
	require.Len(t, about, 1)
	assert.Equal(t, "Thing", about[0]["@type"])
	assert.NotContains(t, n, "mentions")
}

func TestMapArticle_Type(t *testing.T) {
	for _, typ := range []string{schemaorg.ArticleTypeBlogPosting, schemaorg.ArticleTypeNews, schemaorg.ArticleTypeTech} {
		t.Run(typ, func(t *testing.T) {
			n, err := newMapper().MapArticle(schemaorg.Article{URL: "https://example.com/a", Type: typ})
			require.NoError(t, err)
			assert.Equal(t, typ, n["@type"])
		})
	}
}

func TestMapArticle_AuthorFromString(t *testing.T) {
	in := decode[schemaorg.Article](t, `{"headline":"x","url":"https://example.com/a","author":"Jane Doe"}`)

	n, err := newMapper().MapArticle(in)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", child(t, n, "author")["name"])
}

func TestMapFAQPage(t *testing.T) {
	// Arrange
	in := schemaorg.FAQ{
		Title: "FAQ",
		URL:   "https://example.com/faq",
		Questions: []schemaorg.Question{
			{Question: "Why?", Answer: "<p>Because.</p>"},
			{Question: "How?", Answer: "Carefully."},
		},
	}

	// Act
	n, err := newMapper().MapFAQPage(in)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/faq#faq", n["@id"])
	questions := children(t, n, "mainEntity")
	require.Len(t, questions, 2)
	assert.Equal(t, "Why?", questions[0]["name"])
	answer := child(t, questions[0], "acceptedAnswer")
	assert.Equal(t, "Answer", answer["@type"])
	assert.Equal(t, "<p>Because.</p>", answer["text"])
}

func TestMapFAQPage_WithoutURLHasNoID(t *testing.T) {
	n, err := newMapper().MapFAQPage(schemaorg.FAQ{Questions: []schemaorg.Question{}})

	require.NoError(t, err)
	assert.NotContains(t, n, "@id")
	assert.Empty(t, children(t, n, "mainEntity"))
}
