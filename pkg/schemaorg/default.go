package schemaorg

import "github.com/rohmanhakim/jsonld-kit/pkg/jsonld"

func MapProduct(in Product) (jsonld.Node, error) {
	return Default().MapProduct(in)
}

func MapOffer(in Offer) (jsonld.Node, error) {
	return Default().MapOffer(in)
}

func MapReview(in Review) (jsonld.Node, error) {
	return Default().MapReview(in)
}

func MapBrand(in Brand) (jsonld.Node, error) {
	return Default().MapBrand(in)
}

func MapArticle(in Article) (jsonld.Node, error) {
	return Default().MapArticle(in)
}

func MapFAQPage(in FAQ) (jsonld.Node, error) {
	return Default().MapFAQPage(in)
}

func MapWebSite(in WebSite) (jsonld.Node, error) {
	return Default().MapWebSite(in)
}

func MapWebPage(in WebPage) (jsonld.Node, error) {
	return Default().MapWebPage(in)
}

func MapSaaS(in SaaS) (jsonld.Node, error) {
	return Default().MapSaaS(in)
}

func MapItemList(in Collection) (jsonld.Node, error) {
	return Default().MapItemList(in)
}

func MapSearchAction(in SearchAction) (jsonld.Node, error) {
	return Default().MapSearchAction(in)
}

func MapAggregateRating(in AggregateRating) (jsonld.Node, error) {
	return Default().MapAggregateRating(in)
}

func MapCollectionPage(in Collection) (jsonld.Node, error) {
	return Default().MapCollectionPage(in)
}

func MapOrganization(in Organization) (jsonld.Node, error) {
	return Default().MapOrganization(in)
}

func MapBreadcrumbList(in Breadcrumb) (jsonld.Node, error) {
	return Default().MapBreadcrumbList(in)
}
