package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

func (m *Mapper) MapBrand(in Brand) (jsonld.Node, error) {
	id, err := m.optionalID("Brand", in.SchemaID, nodeid.KindBrand, in.URL, "")
	if err != nil {
		return nil, err
	}

	n := newNode("Brand", id)
	putString(n, "name", in.Name)
	putString(n, "url", in.URL)
	putNode(n, "logo", optionalImage(in.Logo))
	putString(n, "description", in.Description)
	putString(n, "slogan", in.Slogan)
	putString(n, "alternateName", in.AlternateName)
	putStrings(n, "sameAs", in.SameAs)
	return n, nil
}
