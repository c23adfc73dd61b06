package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// OrganizationShape is the output shape selected for an Organization input.
type OrganizationShape int

const (
	ShapeOrganization OrganizationShape = iota
	ShapeLocalBusiness
)

func (s OrganizationShape) String() string {
	if s == ShapeLocalBusiness {
		return "LocalBusiness"
	}
	return "Organization"
}

func ClassifyOrganization(in Organization) OrganizationShape {
	if in.IsLocalBusiness {
		return ShapeLocalBusiness
	}
	return ShapeOrganization
}

// MapOrganization returns an Organization, or a LocalBusiness carrying
// geo coordinates, opening hours and a price range ("$$" unless given).
// The @id is origin scoped.
func (m *Mapper) MapOrganization(in Organization) (jsonld.Node, error) {
	id, err := m.resolveID("Organization", in.SchemaID, nodeid.KindOrganization, in.URL, "")
	if err != nil {
		return nil, err
	}

	shape := ClassifyOrganization(in)
	n := newNode(shape.String(), id)
	putString(n, "name", in.Name)
	putString(n, "legalName", in.LegalName)
	putString(n, "alternateName", in.AlternateName)
	putString(n, "description", in.Description)
	putString(n, "url", in.URL)
	n["logo"] = MapImage(in.Logo)
	putStrings(n, "sameAs", in.SameAs)
	putNodes(n, "contactPoint", mapContactPoints(in.ContactPoints))
	putNodes(n, "founder", mapFounders(in.Founders))
	if in.Address != nil {
		n["address"] = mapAddress(*in.Address)
	}

	if shape == ShapeLocalBusiness {
		n["priceRange"] = firstNonEmpty(in.PriceRange, "$$")
		if in.Geo != nil {
			n["geo"] = jsonld.Node{
				"@type":     "GeoCoordinates",
				"latitude":  in.Geo.Latitude,
				"longitude": in.Geo.Longitude,
			}
		}
		putNodes(n, "openingHoursSpecification", mapOpeningHours(in.OpeningHours))
	}
	return n, nil
}

func mapContactPoints(points []ContactPoint) []jsonld.Node {
	out := make([]jsonld.Node, len(points))
	for i, p := range points {
		n := jsonld.Node{"@type": "ContactPoint"}
		putString(n, "telephone", p.Telephone)
		putString(n, "contactType", p.ContactType)
		putString(n, "email", p.Email)
		putList(n, "areaServed", p.AreaServed)
		putList(n, "availableLanguage", p.AvailableLanguage)

		var options []string
		if p.TollFree {
			options = append(options, ContactOptionTollFree)
		}
		if p.HearingImpaired {
			options = append(options, ContactOptionHearingImpaired)
		}
		putStrings(n, "contactOption", options)
		out[i] = n
	}
	return out
}

func mapFounders(founders []Founder) []jsonld.Node {
	out := make([]jsonld.Node, len(founders))
	for i, f := range founders {
		n := jsonld.Node{"@type": "Person"}
		putString(n, "name", f.Name)
		putString(n, "jobTitle", f.JobTitle)
		out[i] = n
	}
	return out
}

func mapOpeningHours(hours []OpeningHours) []jsonld.Node {
	out := make([]jsonld.Node, len(hours))
	for i, h := range hours {
		n := jsonld.Node{"@type": "OpeningHoursSpecification"}
		putList(n, "dayOfWeek", h.DayOfWeek)
		putString(n, "opens", h.Opens)
		putString(n, "closes", h.Closes)
		out[i] = n
	}
	return out
}
