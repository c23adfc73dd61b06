package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// MapWebSite returns the origin-scoped WebSite node. A configured search
// becomes its potentialAction.
func (m *Mapper) MapWebSite(in WebSite) (jsonld.Node, error) {
	id, err := m.resolveID("WebSite", in.SchemaID, nodeid.KindWebSite, in.URL, "")
	if err != nil {
		return nil, err
	}

	n := newNode("WebSite", id)
	putString(n, "name", in.Name)
	putString(n, "alternateName", in.AlternateName)
	putString(n, "url", in.URL)
	if in.Search != nil {
		action, err := m.MapSearchAction(SearchAction{
			URL:        firstNonEmpty(in.Search.URL, in.URL),
			SchemaID:   in.Search.SchemaID,
			Target:     in.Search.Target,
			QueryInput: in.Search.QueryInput,
		})
		if err != nil {
			return nil, err
		}
		n["potentialAction"] = []jsonld.Node{action}
	}
	return n, nil
}

// MapSearchAction returns a SearchAction with an EntryPoint target and a
// "query-input" of "required name=search_term_string" unless given.
func (m *Mapper) MapSearchAction(in SearchAction) (jsonld.Node, error) {
	id, err := m.optionalID("SearchAction", in.SchemaID, nodeid.KindSearchAction, in.URL, "")
	if err != nil {
		return nil, err
	}

	n := newNode("SearchAction", id)
	n["target"] = jsonld.Node{
		"@type":       "EntryPoint",
		"urlTemplate": in.Target,
	}
	n["query-input"] = firstNonEmpty(in.QueryInput, defaultQueryInput)
	return n, nil
}

// MapWebPage returns a WebPage. Breadcrumb wins over Breadcrumbs, of which
// only the first is used.
func (m *Mapper) MapWebPage(in WebPage) (jsonld.Node, error) {
	id, err := m.resolveID("WebPage", in.SchemaID, nodeid.KindWebPage, in.URL, "")
	if err != nil {
		return nil, err
	}

	n := newNode("WebPage", id)
	putString(n, "name", in.Title)
	putString(n, "description", in.Description)
	putString(n, "url", in.URL)
	n["inLanguage"] = firstNonEmpty(in.Language, "en-US")
	putString(n, "datePublished", in.DatePublished)
	putString(n, "dateModified", in.DateModified)

	crumb := in.Breadcrumb
	if crumb == nil && len(in.Breadcrumbs) > 0 {
		crumb = &in.Breadcrumbs[0]
	}
	if crumb != nil {
		list, err := m.MapBreadcrumbList(*crumb)
		if err != nil {
			return nil, err
		}
		n["breadcrumb"] = list
	}
	if in.Publisher != nil {
		n["publisher"] = mapParty(*in.Publisher)
	}
	return n, nil
}

// MapBreadcrumbList returns a BreadcrumbList with 1-based positions. Its @id
// derives from the list URL, else the last item, else the first.
func (m *Mapper) MapBreadcrumbList(in Breadcrumb) (jsonld.Node, error) {
	listURL := in.URL
	if listURL == "" && len(in.Items) > 0 {
		listURL = firstNonEmpty(in.Items[len(in.Items)-1].Item, in.Items[0].Item)
	}
	id, err := m.optionalID("BreadcrumbList", "", nodeid.KindBreadcrumb, listURL, "")
	if err != nil {
		return nil, err
	}

	elements := make([]jsonld.Node, len(in.Items))
	for i, item := range in.Items {
		elements[i] = jsonld.Node{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.Item,
		}
	}

	n := newNode("BreadcrumbList", id)
	n["itemListElement"] = elements
	return n, nil
}
