package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// ProductShape is the output shape selected for a Product input.
type ProductShape int

const (
	// ShapeProduct is a leaf Product carrying offers.
	ShapeProduct ProductShape = iota
	// ShapeProductGroup is a ProductGroup whose variants carry the offers.
	ShapeProductGroup
)

func (s ProductShape) String() string {
	if s == ShapeProductGroup {
		return "ProductGroup"
	}
	return "Product"
}

// ClassifyProduct selects ShapeProductGroup when the input has variants.
func ClassifyProduct(in Product) ProductShape {
	if len(in.Variants) > 0 {
		return ShapeProductGroup
	}
	return ShapeProduct
}

// MapProduct returns a Product, or a ProductGroup when the input has variants.
func (m *Mapper) MapProduct(in Product) (jsonld.Node, error) {
	shape := ClassifyProduct(in)

	var (
		id  string
		err error
	)
	if shape == ShapeProductGroup {
		id, err = m.resolveID("ProductGroup", firstNonEmpty(in.ProductGroupSchemaID, in.SchemaID), nodeid.KindProductGroup, in.URL, "")
	} else {
		id, err = m.resolveID("Product", in.SchemaID, nodeid.KindProduct, in.URL, "")
	}
	if err != nil {
		return nil, err
	}

	n := newNode(shape.String(), id)
	putString(n, "name", in.Title)
	putString(n, "description", in.Description)
	putString(n, "url", in.URL)
	putString(n, "color", in.Color)
	putString(n, "material", in.Material)
	putString(n, "pattern", in.Pattern)
	putString(n, "size", in.Size)
	putString(n, "sku", in.SKU)
	putString(n, "mpn", in.MPN)
	putNodes(n, "image", mapImages(in.Images))
	putGTINs(n, in.GTIN, in.GTIN8, in.GTIN12, in.GTIN13, in.GTIN14)

	if in.Brand != nil {
		brand, err := m.MapBrand(*in.Brand)
		if err != nil {
			return nil, err
		}
		n["brand"] = brand
	}

	reviews, err := m.mapReviews(in.Reviews)
	if err != nil {
		return nil, err
	}
	putNodes(n, "review", reviews)

	rating, err := m.optionalRating(in.Rating)
	if err != nil {
		return nil, err
	}
	putNode(n, "aggregateRating", rating)

	if shape == ShapeProductGroup {
		n["productGroupID"] = firstNonEmpty(in.ProductGroupID, in.ID)
		n["variesBy"] = variesBy(in)
		variants := make([]jsonld.Node, 0, len(in.Variants))
		for _, v := range in.Variants {
			variant, err := m.mapVariant(v, in)
			if err != nil {
				return nil, err
			}
			variants = append(variants, variant)
		}
		n["hasVariant"] = variants
		return n, nil
	}

	offers, err := m.mapOffers(in.Offers.Items, in.URL)
	if err != nil {
		return nil, err
	}
	switch {
	case len(offers) == 0:
	case in.Offers.Single && len(offers) == 1:
		n["offers"] = offers[0]
	default:
		n["offers"] = offers
	}
	putNodes(n, "subjectOf", mapVideos(in.Videos))
	return n, nil
}

func (m *Mapper) mapVariant(v Variant, parent Product) (jsonld.Node, error) {
	variantURL := v.URL
	if variantURL == "" {
		variantURL = parent.URL + "?variant=" + v.ID
	}
	id, err := m.resolveID("Product", v.SchemaID, nodeid.KindProduct, variantURL, "")
	if err != nil {
		return nil, err
	}

	n := newNode("Product", id)
	n["url"] = variantURL
	putString(n, "name", v.Title)
	putString(n, "description", parent.Description)
	putNode(n, "image", optionalImage(v.Image))
	putString(n, "sku", v.SKU)
	putGTINs(n, v.GTIN, v.GTIN8, v.GTIN12, v.GTIN13, v.GTIN14)

	offers, err := m.mapOffers([]Offer{v.Offers}, variantURL)
	if err != nil {
		return nil, err
	}
	n["offers"] = offers[0]

	putString(n, "color", firstNonEmpty(v.Color, parent.Color))
	putString(n, "size", firstNonEmpty(v.Size, parent.Size))
	putString(n, "material", firstNonEmpty(v.Material, parent.Material))
	return n, nil
}

func variesBy(in Product) []string {
	out := []string{}
	if in.Color != "" {
		out = append(out, "https://schema.org/color")
	}
	if in.Size != "" {
		out = append(out, "https://schema.org/size")
	}
	if in.Material != "" {
		out = append(out, "https://schema.org/material")
	}
	return out
}

func putGTINs(n jsonld.Node, gtin, gtin8, gtin12, gtin13, gtin14 string) {
	putString(n, "gtin", gtin)
	putString(n, "gtin8", gtin8)
	putString(n, "gtin12", gtin12)
	putString(n, "gtin13", gtin13)
	putString(n, "gtin14", gtin14)
}
