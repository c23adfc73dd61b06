package schemaorg_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() schemaorg.Product {
	return schemaorg.Product{
		ID:          "p1",
		Title:       "Test Product",
		Description: "A product",
		URL:         "https://Example.com/products/test-product?utm_source=x&b=2&a=1#frag",
		Images:      []schemaorg.Image{{URL: "https://example.com/p.jpg", AltText: "Front"}},
		Brand:       &schemaorg.Brand{Name: "Acme"},
		SKU:         "SKU-1",
		Offers: schemaorg.OneOffer(schemaorg.Offer{
			Price:        "19.99",
			Currency:     "USD",
			Availability: "InStock",
		}),
	}
}

func TestMapProduct_SingleProduct(t *testing.T) {
	// Arrange
	m := newMapper()

	// Act
	n, err := m.MapProduct(sampleProduct())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Product", n["@type"])
	assert.Equal(t, "https://example.com/products/test-product?a=1&b=2#product", n["@id"])
	assert.Equal(t, "Test Product", n["name"])
	assert.Equal(t, "SKU-1", n["sku"])
	assert.NotContains(t, n, "@context")
	assert.NotContains(t, n, "hasVariant")

	offer := child(t, n, "offers")
	assert.Equal(t, json.Number("19.99"), offer["price"])
	assert.Equal(t, "https://example.com/products/test-product?a=1&b=2#offer", offer["@id"])
	assert.Equal(t, sampleProduct().URL, offer["url"])

	brand := child(t, n, "brand")
	assert.Equal(t, "Acme", brand["name"])
	assert.NotContains(t, brand, "@id")

	images := children(t, n, "image")
	require.Len(t, images, 1)
	assert.Equal(t, "Front", images[0]["caption"])
}

func TestMapProduct_SeveralOffersStaySequence(t *testing.T) {
	// Arrange
	in := sampleProduct()
	in.Offers = schemaorg.OfferSequence(
		in.Offers.Items[0],
		schemaorg.Offer{Price: "25", Currency: "EUR", URL: "https://example.com/eu"},
	)

	// Act
	n, err := newMapper().MapProduct(in)

	// Assert
	require.NoError(t, err)
	offers := children(t, n, "offers")
	require.Len(t, offers, 2)
	assert.Equal(t, "https://example.com/eu#offer", offers[1]["@id"])
}

func TestMapProduct_OneElementSequenceStaysSequence(t *testing.T) {
	// Arrange
	in := sampleProduct()
	in.Offers = schemaorg.OfferSequence(in.Offers.Items...)

	// Act
	n, err := newMapper().MapProduct(in)

	// Assert
	require.NoError(t, err)
	offers := children(t, n, "offers")
	require.Len(t, offers, 1)
	assert.Equal(t, json.Number("19.99"), offers[0]["price"])
}

func TestMapProduct_SchemaIDOverride(t *testing.T) {
	in := sampleProduct()
	in.SchemaID = "https://example.com/custom#thing"

	n, err := newMapper().MapProduct(in)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/custom#thing", n["@id"])
}

func TestMapProduct_ProductGroup(t *testing.T) {
	// Arrange
	in := sampleProduct()
	in.URL = "https://example.com/products/shirt"
	in.Color = "Blue"
	in.Size = "M"
	in.Variants = []schemaorg.Variant{
		{ID: "v1", SKU: "SKU-1-S", Title: "Shirt S", Size: "S", Offers: schemaorg.Offer{Price: "10", Currency: "USD"}},
		{ID: "v2", SKU: "SKU-1-L", Title: "Shirt L", URL: "https://example.com/products/shirt-l", Offers: schemaorg.Offer{Price: "12", Currency: "USD"}},
	}

	// Act
	n, err := newMapper().MapProduct(in)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, schemaorg.ShapeProductGroup, schemaorg.ClassifyProduct(in))
	assert.Equal(t, "ProductGroup", n["@type"])
	assert.Equal(t, "https://example.com/products/shirt#product-group", n["@id"])
	assert.Equal(t, "p1", n["productGroupID"])
	assert.Equal(t, []string{"https://schema.org/color", "https://schema.org/size"}, n["variesBy"])
	assert.NotContains(t, n, "offers")

	variants := children(t, n, "hasVariant")
	require.Len(t, variants, 2)

	first := variants[0]
	assert.Equal(t, "Product", first["@type"])
	assert.Equal(t, "https://example.com/products/shirt?variant=v1", first["url"])
	assert.Equal(t, "https://example.com/products/shirt?variant=v1#product", first["@id"])
	assert.Equal(t, "S", first["size"])
	assert.Equal(t, "Blue", first["color"])
	assert.Equal(t, "A product", first["description"])
	assert.Equal(t, "https://example.com/products/shirt?variant=v1", child(t, first, "offers")["url"])

	second := variants[1]
	assert.Equal(t, "https://example.com/products/shirt-l#product", second["@id"])
	assert.Equal(t, "M", second["size"])
}

func TestMapProduct_ProductGroupIDPrecedence(t *testing.T) {
	in := sampleProduct()
	in.ProductGroupID = "group-1"
	in.ProductGroupSchemaID = "https://example.com/#group"
	in.SchemaID = "https://example.com/#ignored"
	in.Variants = []schemaorg.Variant{{ID: "v1", Offers: schemaorg.Offer{Price: "1"}}}

	n, err := newMapper().MapProduct(in)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/#group", n["@id"])
	assert.Equal(t, "group-1", n["productGroupID"])
	assert.Equal(t, []string{}, n["variesBy"])
}

func TestMapProduct_InvalidURL(t *testing.T) {
	in := sampleProduct()
	in.URL = "/relative/path"

	_, err := newMapper().MapProduct(in)

	require.Error(t, err)
	var mapErr *schemaorg.MapError
	require.True(t, errors.As(err, &mapErr))
	assert.Equal(t, schemaorg.ErrCauseIdentifier, mapErr.Cause)
	assert.Equal(t, "Product", mapErr.Entity)
}

func TestMapProduct_ReviewsAndRating(t *testing.T) {
	in := sampleProduct()
	in.Reviews = []schemaorg.Review{{
		Author:          schemaorg.EntityRef{Name: "Jane"},
		ReviewBody:      "Great",
		Rating:          4,
		IsVerifiedBuyer: true,
	}}
	in.Rating = &schemaorg.AggregateRating{RatingValue: 4.5, ReviewCount: 10}

	n, err := newMapper().MapProduct(in)

	require.NoError(t, err)
	reviews := children(t, n, "review")
	require.Len(t, reviews, 1)
	assert.Equal(t, "Verified Purchase", reviews[0]["name"])
	rating := child(t, n, "aggregateRating")
	assert.Equal(t, 4.5, rating["ratingValue"])
	assert.Equal(t, float64(5), rating["bestRating"])
	assert.Equal(t, float64(1), rating["worstRating"])
}

func TestMapProduct_ComposesIntoValidGraph(t *testing.T) {
	// Arrange
	m := newMapper()
	product, err := m.MapProduct(sampleProduct())
	require.NoError(t, err)
	page, err := m.MapWebPage(schemaorg.WebPage{Title: "Test", URL: sampleProduct().URL})
	require.NoError(t, err)

	// Act
	graph := jsonld.CreateGraph(page, product, product)

	// Assert
	assert.Len(t, graph.Graph, 2)
	assert.Empty(t, jsonld.Validate(graph, jsonld.DefaultValidateOptions()))
}
