package schemaorg_test

import (
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrganization() schemaorg.Organization {
	return schemaorg.Organization{
		Name:   "Acme",
		URL:    "https://www.acme.test/about",
		Logo:   schemaorg.Image{URL: "https://www.acme.test/logo.png", AltText: "Acme logo"},
		SameAs: []string{"https://twitter.com/acme"},
		ContactPoints: []schemaorg.ContactPoint{{
			Telephone:   "+1-555-0100",
			ContactType: "customer service",
			AreaServed:  schemaorg.StringList{"US"},
			TollFree:    true,
		}},
		Founders: []schemaorg.Founder{{Name: "Ada", JobTitle: "CEO"}},
	}
}

func TestMapOrganization(t *testing.T) {
	// Act
	n, err := newMapper().MapOrganization(sampleOrganization())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Organization", n["@type"])
	assert.Equal(t, "https://www.acme.test/#org", n["@id"])
	assert.Equal(t, "Acme logo", child(t, n, "logo")["caption"])
	assert.NotContains(t, n, "priceRange")

	contacts := children(t, n, "contactPoint")
	require.Len(t, contacts, 1)
	assert.Equal(t, "US", contacts[0]["areaServed"])
	assert.Equal(t, []string{schemaorg.ContactOptionTollFree}, contacts[0]["contactOption"])

	founders := children(t, n, "founder")
	require.Len(t, founders, 1)
	assert.Equal(t, "Person", founders[0]["@type"])
}

func TestMapOrganization_LocalBusiness(t *testing.T) {
	// Arrange
	in := sampleOrganization()
	in.IsLocalBusiness = true
	in.Geo = &schemaorg.Geo{Latitude: 40.7, Longitude: -74}
	in.Address = &schemaorg.Address{StreetAddress: "1 Main St", AddressCountry: "US"}
	in.OpeningHours = []schemaorg.OpeningHours{{DayOfWeek: schemaorg.StringList{"Monday", "Tuesday"}, Opens: "09:00", Closes: "17:00"}}

	// Act
	n, err := newMapper().MapOrganization(in)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, schemaorg.ShapeLocalBusiness, schemaorg.ClassifyOrganization(in))
	assert.Equal(t, "LocalBusiness", n["@type"])
	assert.Equal(t, "$$", n["priceRange"])
	assert.Equal(t, 40.7, child(t, n, "geo")["latitude"])
	assert.Equal(t, "PostalAddress", child(t, n, "address")["@type"])
	hours := children(t, n, "openingHoursSpecification")
	require.Len(t, hours, 1)
	assert.Equal(t, []any{"Monday", "Tuesday"}, hours[0]["dayOfWeek"])
}

func TestMapOrganization_ExplicitPriceRange(t *testing.T) {
	in := sampleOrganization()
	in.IsLocalBusiness = true
	in.PriceRange = "$"

	n, err := newMapper().MapOrganization(in)

	require.NoError(t, err)
	assert.Equal(t, "$", n["priceRange"])
}
