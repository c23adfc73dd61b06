// Package nodeid derives stable JSON-LD @id values from canonical URLs.
//
// Identifiers are a pure function of the canonical URL (or its origin), a
// fixed fragment tag per entity kind, and an optional disambiguation key.
// Equivalent URL spellings therefore always produce the same identifier.
package nodeid

import (
	"fmt"
	"sync"

	"github.com/rohmanhakim/jsonld-kit/pkg/hashutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
)

// Kind names an entity kind with a fixed fragment tag.
type Kind string

const (
	KindURL                 Kind = "url"
	KindWebPage             Kind = "webpage"
	KindProduct             Kind = "product"
	KindProductGroup        Kind = "product-group"
	KindCollectionPage      Kind = "collection-page"
	KindArticle             Kind = "article"
	KindFAQPage             Kind = "faq"
	KindSoftwareApplication Kind = "software-application"
	KindBrand               Kind = "brand"
	KindReview              Kind = "review"
	KindAggregateRating     Kind = "aggregate-rating"
	KindWebSite             Kind = "website"
	KindOrganization        Kind = "org"
	KindBreadcrumb          Kind = "breadcrumb"
	KindItemList            Kind = "itemlist"
	KindOffer               Kind = "offer"
	KindSearchAction        Kind = "search-action"
)

type scope int

const (
	scopeURL scope = iota
	scopeOrigin
)

type kindSpec struct {
	scope scope
	keyed bool
}

var kinds = map[Kind]kindSpec{
	KindURL:                 {scope: scopeURL},
	KindWebPage:             {scope: scopeURL},
	KindProduct:             {scope: scopeURL},
	KindProductGroup:        {scope: scopeURL},
	KindCollectionPage:      {scope: scopeURL},
	KindArticle:             {scope: scopeURL},
	KindFAQPage:             {scope: scopeURL},
	KindSoftwareApplication: {scope: scopeURL},
	KindBrand:               {scope: scopeURL},
	KindReview:              {scope: scopeURL, keyed: true},
	KindAggregateRating:     {scope: scopeURL, keyed: true},
	KindWebSite:             {scope: scopeOrigin},
	KindOrganization:        {scope: scopeOrigin},
	KindBreadcrumb:          {scope: scopeURL, keyed: true},
	KindItemList:            {scope: scopeURL, keyed: true},
	KindOffer:               {scope: scopeURL, keyed: true},
	KindSearchAction:        {scope: scopeOrigin},
}

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindURL, KindWebPage, KindProduct, KindProductGroup, KindCollectionPage,
		KindArticle, KindFAQPage, KindSoftwareApplication, KindBrand, KindReview,
		KindAggregateRating, KindWebSite, KindOrganization, KindBreadcrumb,
		KindItemList, KindOffer, KindSearchAction,
	}
}

// IsKeyed reports whether kind accepts a disambiguation key.
func (k Kind) IsKeyed() bool {
	return kinds[k].keyed
}

// Deriver builds identifiers through a canonicalization advisor.
type Deriver struct {
	advisor *urlutil.Advisor
}

func NewDeriver(advisor *urlutil.Advisor) *Deriver {
	if advisor == nil {
		advisor = urlutil.DefaultAdvisor()
	}
	return &Deriver{advisor: advisor}
}

var defaultDeriver = sync.OnceValue(func() *Deriver {
	return NewDeriver(urlutil.DefaultAdvisor())
})

// Default returns the deriver backed by urlutil.DefaultAdvisor.
func Default() *Deriver {
	return defaultDeriver()
}

// Derive builds the identifier of kind for rawURL. key is ignored by kinds
// that are not keyed; an empty key adds no suffix.
func (d *Deriver) Derive(kind Kind, rawURL string, key string) (string, error) {
	spec, ok := kinds[kind]
	if !ok {
		return "", fmt.Errorf("unknown identifier kind: %q", kind)
	}

	if spec.scope == scopeOrigin {
		origin, err := d.advisor.Origin(rawURL)
		if err != nil {
			return "", err
		}
		return origin + "/#" + string(kind), nil
	}

	canonical, err := d.advisor.CanonicalizeString(rawURL)
	if err != nil {
		return "", err
	}
	if kind == KindURL {
		return canonical, nil
	}
	id := canonical + "#" + string(kind)
	if spec.keyed && key != "" {
		id += "-" + key
	}
	return id, nil
}

func (d *Deriver) URL(rawURL string) (string, error) {
	return d.Derive(KindURL, rawURL, "")
}

func (d *Deriver) WebPage(pageURL string) (string, error) {
	return d.Derive(KindWebPage, pageURL, "")
}

func (d *Deriver) Product(productURL string) (string, error) {
	return d.Derive(KindProduct, productURL, "")
}

func (d *Deriver) ProductGroup(productURL string) (string, error) {
	return d.Derive(KindProductGroup, productURL, "")
}

func (d *Deriver) CollectionPage(pageURL string) (string, error) {
	return d.Derive(KindCollectionPage, pageURL, "")
}

func (d *Deriver) Article(pageURL string) (string, error) {
	return d.Derive(KindArticle, pageURL, "")
}

func (d *Deriver) FAQPage(pageURL string) (string, error) {
	return d.Derive(KindFAQPage, pageURL, "")
}

func (d *Deriver) SoftwareApplication(pageURL string) (string, error) {
	return d.Derive(KindSoftwareApplication, pageURL, "")
}

func (d *Deriver) Brand(brandURL string) (string, error) {
	return d.Derive(KindBrand, brandURL, "")
}

func (d *Deriver) Review(pageURL string, key string) (string, error) {
	return d.Derive(KindReview, pageURL, key)
}

func (d *Deriver) AggregateRating(pageURL string, key string) (string, error) {
	return d.Derive(KindAggregateRating, pageURL, key)
}

func (d *Deriver) WebSite(siteURL string) (string, error) {
	return d.Derive(KindWebSite, siteURL, "")
}

func (d *Deriver) Organization(siteURL string) (string, error) {
	return d.Derive(KindOrganization, siteURL, "")
}

func (d *Deriver) Breadcrumb(pageURL string, key string) (string, error) {
	return d.Derive(KindBreadcrumb, pageURL, key)
}

func (d *Deriver) ItemList(pageURL string, key string) (string, error) {
	return d.Derive(KindItemList, pageURL, key)
}

func (d *Deriver) Offer(pageURL string, key string) (string, error) {
	return d.Derive(KindOffer, pageURL, key)
}

func (d *Deriver) SearchAction(siteURL string) (string, error) {
	return d.Derive(KindSearchAction, siteURL, "")
}

// Resolve returns override verbatim when it is non-empty; derive is not called.
func Resolve(override string, derive func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return derive()
}

// HashKey builds a 12 character disambiguation key from parts, for callers
// whose natural key is long or unsuitable for a URL fragment.
func HashKey(parts ...string) string {
	// BLAKE3 is always supported, so the error is unreachable
	key, _ := hashutil.ShortHash(hashutil.HashAlgoBLAKE3, 12, parts...)
	return key
}
