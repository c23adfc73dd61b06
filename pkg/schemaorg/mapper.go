// Package schemaorg maps declarative business data into schema.org JSON-LD
// nodes. Every node gets a stable @id from package nodeid unless the input
// carries an explicit SchemaID. Nodes never carry @context; compose them
// with jsonld.CreateGraph.
package schemaorg

import (
	"encoding/json"
	"sync"

	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// Mapper derives identifiers through its own nodeid.Deriver.
type Mapper struct {
	ids *nodeid.Deriver
}

func NewMapper(ids *nodeid.Deriver) *Mapper {
	if ids == nil {
		ids = nodeid.Default()
	}
	return &Mapper{ids: ids}
}

var defaultMapper = sync.OnceValue(func() *Mapper {
	return NewMapper(nodeid.Default())
})

// Default returns the Mapper backed by nodeid.Default.
func Default() *Mapper {
	return defaultMapper()
}

// resolveID returns override, or the identifier of kind for rawURL.
func (m *Mapper) resolveID(entity, override string, kind nodeid.Kind, rawURL, key string) (string, error) {
	id, err := nodeid.Resolve(override, func() (string, error) {
		return m.ids.Derive(kind, rawURL, key)
	})
	if err != nil {
		return "", identifierError(entity, err)
	}
	return id, nil
}

// optionalID is resolveID for entities whose @id is only derived when a URL
// is known.
func (m *Mapper) optionalID(entity, override string, kind nodeid.Kind, rawURL, key string) (string, error) {
	if override == "" && rawURL == "" {
		return "", nil
	}
	return m.resolveID(entity, override, kind, rawURL, key)
}

func newNode(typ, id string) jsonld.Node {
	n := jsonld.Node{"@type": typ}
	putString(n, "@id", id)
	return n
}

func putString(n jsonld.Node, key, value string) {
	if value != "" {
		n[key] = value
	}
}

func putNumber(n jsonld.Node, key string, value json.Number) {
	if value != "" {
		n[key] = value
	}
}

func putNode(n jsonld.Node, key string, value jsonld.Node) {
	if value != nil {
		n[key] = value
	}
}

func putNodes(n jsonld.Node, key string, values []jsonld.Node) {
	if len(values) > 0 {
		n[key] = values
	}
}

func putStrings(n jsonld.Node, key string, values []string) {
	if len(values) > 0 {
		n[key] = values
	}
}

func putList(n jsonld.Node, key string, values StringList) {
	if v := values.value(); v != nil {
		n[key] = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func orDefault(value, fallback float64) float64 {
	if value == 0 {
		return fallback
	}
	return value
}

func quantitativeValue(value any, unitCode string) jsonld.Node {
	n := jsonld.Node{"@type": "QuantitativeValue", "value": value}
	putString(n, "unitCode", unitCode)
	return n
}
