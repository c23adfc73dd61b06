package manifest_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rohmanhakim/jsonld-kit/internal/content"
	"github.com/rohmanhakim/jsonld-kit/internal/manifest"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorSpy struct {
	metadata.NoopSink
	causes []metadata.ErrorCause
	attrs  [][]metadata.Attribute
}

func (s *errorSpy) RecordError(observedAt time.Time, packageName string, action string, cause metadata.ErrorCause, details string, attrs []metadata.Attribute) {
	s.causes = append(s.causes, cause)
	s.attrs = append(s.attrs, attrs)
}

func newBuilder(sink metadata.Sink) *manifest.Builder {
	advisor := urlutil.NewAdvisor(urlutil.DefaultOptions(), urlutil.NewMemoryNotifier(), &metadata.NoopSink{}, false)
	mapper := schemaorg.NewMapper(nodeid.NewDeriver(advisor))
	return manifest.NewBuilder(mapper, content.NewConverter(sink), sink)
}

func typesOf(graph jsonld.Graph) []any {
	out := make([]any, len(graph.Graph))
	for i, n := range graph.Graph {
		out[i] = n["@type"]
	}
	return out
}

func TestLoad_JSON(t *testing.T) {
	// Act
	m, err := manifest.Load("testdata/product.json")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://Example.com/products/test-product?utm_source=x&b=2&a=1#frag", m.URL)
	require.NotNil(t, m.Website)
	require.Len(t, m.Products, 1)
	assert.Equal(t, "Acme", m.Products[0].Brand.Name)
	require.Len(t, m.Products[0].Offers.Items, 1)
	assert.True(t, m.Products[0].Offers.Single)
	require.NotNil(t, m.Products[0].Offers.Items[0].Quantity)
	assert.Equal(t, 0, *m.Products[0].Offers.Items[0].Quantity)
}

func TestLoad_YAML(t *testing.T) {
	m, err := manifest.Load("testdata/article.yaml")

	require.NoError(t, err)
	require.Len(t, m.Articles, 1)
	assert.Equal(t, "Jane Doe", m.Articles[0].Author.Name)
	assert.Equal(t, "2024-01-01", m.Articles[0].DatePublished)
	assert.Contains(t, m.Articles[0].ArticleBodyHTML, "<em>world</em>")
	require.Len(t, m.FAQs, 1)
	assert.Equal(t, manifest.AnswerMarkdown, m.FAQs[0].AnswerFormat)
	require.Len(t, m.Nodes, 1)
	assert.Equal(t, "Raw node", m.Nodes[0]["name"])
}

func TestLoad_SchemaViolations(t *testing.T) {
	// Act
	_, err := manifest.Load("testdata/invalid.json")

	// Assert
	require.Error(t, err)
	var manifestErr *manifest.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, manifest.ErrCauseSchemaMismatch, manifestErr.Cause)
	assert.Equal(t, "testdata/invalid.json", manifestErr.Path)

	paths := make([]string, len(manifestErr.Violations))
	for i, v := range manifestErr.Violations {
		paths[i] = v.Path
		assert.NotEmpty(t, v.Message)
	}
	assert.Contains(t, paths, "")
	assert.Contains(t, paths, "/products/0")
	assert.Contains(t, paths, "/products/0/offers")
	assert.IsNonDecreasing(t, paths)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := manifest.Load("testdata/malformed.yaml")

	var manifestErr *manifest.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, manifest.ErrCauseParseFailure, manifestErr.Cause)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load("testdata/missing.json")

	var manifestErr *manifest.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, manifest.ErrCauseReadFailure, manifestErr.Cause)
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := manifest.Decode([]byte(`{"url":`), false)

	var manifestErr *manifest.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, manifest.ErrCauseParseFailure, manifestErr.Cause)
}

func TestBuilder_Graph_Product(t *testing.T) {
	// Arrange
	m, err := manifest.Load("testdata/product.json")
	require.NoError(t, err)

	// Act
	graph, err := newBuilder(&metadata.NoopSink{}).Graph(m)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, jsonld.SchemaContext, graph.Context)
	assert.Equal(t, []any{"WebSite", "Organization", "WebPage", "Product"}, typesOf(graph))
	assert.Equal(t, "https://example.com/products/test-product?a=1&b=2#product", graph.Graph[3]["@id"])
	assert.Empty(t, jsonld.Validate(graph, jsonld.DefaultValidateOptions()))
}

func TestBuilder_Graph_ContentConversions(t *testing.T) {
	// Arrange
	m, err := manifest.Load("testdata/article.yaml")
	require.NoError(t, err)

	// Act
	graph, err := newBuilder(&metadata.NoopSink{}).Graph(m)

	// Assert
	require.NoError(t, err)
	require.Len(t, graph.Graph, 3)
	assert.Equal(t, []any{"BlogPosting", "FAQPage", "Thing"}, typesOf(graph))

	article := graph.Graph[0]
	assert.Equal(t, "Hello *world*.", article["articleBody"])

	questions, ok := graph.Graph[1]["mainEntity"].([]jsonld.Node)
	require.True(t, ok)
	answer, ok := questions[0]["acceptedAnswer"].(jsonld.Node)
	require.True(t, ok)
	assert.Equal(t, "<p>Yes, <strong>completely</strong>.</p>", answer["text"])

	assert.NotContains(t, graph.Graph[2], "@context")
}

func TestBuilder_Nodes_Deterministic(t *testing.T) {
	m, err := manifest.Load("testdata/product.json")
	require.NoError(t, err)
	b := newBuilder(&metadata.NoopSink{})

	first, err := b.Graph(m)
	require.NoError(t, err)
	second, err := b.Graph(m)
	require.NoError(t, err)

	firstText, err := jsonld.ToString(first, jsonld.DefaultStringifyOptions())
	require.NoError(t, err)
	secondText, err := jsonld.ToString(second, jsonld.DefaultStringifyOptions())
	require.NoError(t, err)
	assert.Equal(t, firstText, secondText)
}

func TestBuilder_Graph_ReviewsOnOnePageKeepDistinctIDs(t *testing.T) {
	// Arrange
	review := func(author, body string) schemaorg.Review {
		return schemaorg.Review{
			URL:           "https://example.com/products/shirt",
			Author:        schemaorg.EntityRef{Name: author},
			DatePublished: "2024-03-01",
			ReviewBody:    body,
			Rating:        5,
		}
	}
	m := manifest.Manifest{
		URL:     "https://example.com/products/shirt",
		Reviews: []schemaorg.Review{review("Ann", "Fits well"), review("Bob", "Too small")},
	}

	// Act
	graph, err := newBuilder(&metadata.NoopSink{}).Graph(m)

	// Assert
	require.NoError(t, err)
	require.Len(t, graph.Graph, 2)
	assert.Equal(t,
		"https://example.com/products/shirt#review-"+nodeid.HashKey("Ann", "2024-03-01", "Fits well"),
		graph.Graph[0]["@id"],
	)
	assert.Equal(t,
		"https://example.com/products/shirt#review-"+nodeid.HashKey("Bob", "2024-03-01", "Too small"),
		graph.Graph[1]["@id"],
	)
}

func TestBuilder_MappingFailureIsRecorded(t *testing.T) {
	// Arrange
	spy := &errorSpy{}
	m := manifest.Manifest{
		URL:      "https://example.com/",
		Products: []schemaorg.Product{{Title: "Broken", URL: "not a url"}},
	}

	// Act
	_, err := newBuilder(spy).Nodes(m)

	// Assert
	var manifestErr *manifest.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, manifest.ErrCauseMappingFailure, manifestErr.Cause)
	assert.Contains(t, manifestErr.Error(), "products[0]")

	var mapErr *schemaorg.MapError
	assert.True(t, errors.As(err, &mapErr))

	require.Len(t, spy.causes, 1)
	assert.Equal(t, metadata.CauseInvalidInput, spy.causes[0])
	assert.Contains(t, spy.attrs[0], metadata.NewAttr(metadata.AttrField, "products[0]"))
}

func TestSchemaSource_IsEmbedded(t *testing.T) {
	assert.Contains(t, string(manifest.SchemaSource()), `"$schema"`)
}
