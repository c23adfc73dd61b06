package nodeid

// Package-level helpers delegate to Default().

func URL(rawURL string) (string, error)      { return Default().URL(rawURL) }
func WebPage(pageURL string) (string, error) { return Default().WebPage(pageURL) }
func Product(productURL string) (string, error) {
	return Default().Product(productURL)
}
func ProductGroup(productURL string) (string, error) {
	return Default().ProductGroup(productURL)
}
func CollectionPage(pageURL string) (string, error) {
	return Default().CollectionPage(pageURL)
}
func Article(pageURL string) (string, error) { return Default().Article(pageURL) }
func FAQPage(pageURL string) (string, error) { return Default().FAQPage(pageURL) }
func SoftwareApplication(pageURL string) (string, error) {
	return Default().SoftwareApplication(pageURL)
}
func Brand(brandURL string) (string, error) { return Default().Brand(brandURL) }
func Review(pageURL string, key string) (string, error) {
	return Default().Review(pageURL, key)
}
func AggregateRating(pageURL string, key string) (string, error) {
	return Default().AggregateRating(pageURL, key)
}
func WebSite(siteURL string) (string, error)      { return Default().WebSite(siteURL) }
func Organization(siteURL string) (string, error) { return Default().Organization(siteURL) }
func Breadcrumb(pageURL string, key string) (string, error) {
	return Default().Breadcrumb(pageURL, key)
}
func ItemList(pageURL string, key string) (string, error) {
	return Default().ItemList(pageURL, key)
}
func Offer(pageURL string, key string) (string, error) {
	return Default().Offer(pageURL, key)
}
func SearchAction(siteURL string) (string, error) { return Default().SearchAction(siteURL) }
