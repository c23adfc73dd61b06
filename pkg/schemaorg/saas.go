package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// primaryOfferKey names the single subscription offer of an application.
const primaryOfferKey = "primary"

// MapSaaS returns a SoftwareApplication with subscription pricing.
func (m *Mapper) MapSaaS(in SaaS) (jsonld.Node, error) {
	id, err := m.resolveID("SoftwareApplication", in.SchemaID, nodeid.KindSoftwareApplication, in.URL, "")
	if err != nil {
		return nil, err
	}

	n := newNode("SoftwareApplication", id)
	putString(n, "name", in.Name)
	putString(n, "headline", in.Headline)
	putString(n, "description", firstNonEmpty(in.Description, in.Headline))
	putString(n, "url", in.URL)
	putString(n, "operatingSystem", in.OperatingSystem)
	putString(n, "applicationCategory", in.ApplicationCategory)
	putString(n, "softwareVersion", in.SoftwareVersion)
	putNode(n, "screenshot", optionalImage(in.Screenshot))
	putNode(n, "image", optionalImage(in.Logo))
	putNode(n, "video", optionalVideo(in.Video))

	rating, err := m.optionalRating(in.Rating)
	if err != nil {
		return nil, err
	}
	putNode(n, "aggregateRating", rating)
	reviews, err := m.mapReviews(in.Reviews)
	if err != nil {
		return nil, err
	}
	putNodes(n, "review", reviews)

	offer, err := m.mapSaaSOffer(in.Offers, in.URL)
	if err != nil {
		return nil, err
	}
	n["offers"] = offer
	return n, nil
}

func (m *Mapper) mapSaaSOffer(in SaaSOffer, appURL string) (jsonld.Node, error) {
	id, err := m.optionalID("Offer", in.SchemaID, nodeid.KindOffer, appURL, primaryOfferKey)
	if err != nil {
		return nil, err
	}

	n := newNode("Offer", id)
	putString(n, "url", appURL)
	putNumber(n, "price", in.Price)
	putString(n, "priceCurrency", in.Currency)
	n["availability"] = AvailabilityInStock
	putString(n, "priceValidUntil", in.PriceValidUntil)
	if in.BillingUnit != "" {
		duration := in.BillingDuration
		if duration == 0 {
			duration = 1
		}
		priceSpec := jsonld.Node{"@type": "UnitPriceSpecification"}
		putNumber(priceSpec, "price", in.Price)
		putString(priceSpec, "priceCurrency", in.Currency)
		priceSpec["referenceQuantity"] = quantitativeValue(duration, lookupOr(unitCodeByName, in.BillingUnit, UnitCodeMonth))
		n["priceSpecification"] = priceSpec
	}
	return n, nil
}
