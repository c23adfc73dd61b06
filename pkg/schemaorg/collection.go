package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// MapCollectionPage returns a CollectionPage whose mainEntity is the item
// list of the collection.
func (m *Mapper) MapCollectionPage(in Collection) (jsonld.Node, error) {
	id, err := m.resolveID("CollectionPage", in.SchemaID, nodeid.KindCollectionPage, in.URL, "")
	if err != nil {
		return nil, err
	}
	list, err := m.MapItemList(in)
	if err != nil {
		return nil, err
	}

	n := newNode("CollectionPage", id)
	putString(n, "name", in.Title)
	putString(n, "description", in.Description)
	putString(n, "url", in.URL)
	putNode(n, "primaryImageOfPage", optionalImage(in.Image))
	n["mainEntity"] = list
	return n, nil
}

// MapItemList returns an ItemList of full Product nodes at 1-based positions.
func (m *Mapper) MapItemList(in Collection) (jsonld.Node, error) {
	id, err := m.resolveID("ItemList", in.ItemListSchemaID, nodeid.KindItemList, in.URL, in.ItemListKey)
	if err != nil {
		return nil, err
	}

	elements := make([]jsonld.Node, 0, len(in.Products))
	for i, p := range in.Products {
		item, err := m.MapProduct(p)
		if err != nil {
			return nil, err
		}
		elements = append(elements, jsonld.Node{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     item,
		})
	}

	n := newNode("ItemList", id)
	putString(n, "name", in.Title)
	putString(n, "description", in.Description)
	if in.HasExplicitOrdering {
		n["itemListOrder"] = ItemListOrderAscending
	} else {
		n["itemListOrder"] = ItemListUnordered
	}
	n["numberOfItems"] = len(in.Products)
	n["itemListElement"] = elements
	return n, nil
}
