package schemaorg_test

import (
	"encoding/json"
	"testing"

	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/stretchr/testify/assert"
)

func TestOfferList_Decode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		single   bool
	}{
		{"single object", `{"offers": {"price": 1}}`, 1, true},
		{"sequence", `{"offers": [{"price": 1}, {"price": "2.50"}]}`, 2, false},
		{"one element sequence", `{"offers": [{"price": 1}]}`, 1, false},
		{"empty sequence", `{"offers": []}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := decode[schemaorg.Product](t, tt.raw)
			assert.Len(t, p.Offers.Items, tt.expected)
			assert.Equal(t, tt.single, p.Offers.Single)
		})
	}
}

func TestBrand_DecodeFromString(t *testing.T) {
	p := decode[schemaorg.Product](t, `{"brand": "Acme"}`)

	assert.Equal(t, &schemaorg.Brand{Name: "Acme"}, p.Brand)
}

func TestStringList_Decode(t *testing.T) {
	single := decode[schemaorg.OpeningHours](t, `{"dayOfWeek": "Monday"}`)
	many := decode[schemaorg.OpeningHours](t, `{"dayOfWeek": ["Monday", "Friday"]}`)

	assert.Equal(t, schemaorg.StringList{"Monday"}, single.DayOfWeek)
	assert.Equal(t, schemaorg.StringList{"Monday", "Friday"}, many.DayOfWeek)
}

func TestStringList_DecodeRejectsNumbers(t *testing.T) {
	var hours schemaorg.OpeningHours

	err := json.Unmarshal([]byte(`{"dayOfWeek": 3}`), &hours)

	assert.Error(t, err)
}

func TestPriceOf(t *testing.T) {
	assert.Equal(t, json.Number("19.99"), schemaorg.PriceOf(19.99))
	assert.Equal(t, json.Number("20"), schemaorg.PriceOf(20))
}
