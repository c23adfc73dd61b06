package schemaorg

import (
	"bytes"
	"encoding/json"
)

// Image is a picture with mandatory alternative text.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type Video struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	// UploadDate is ISO 8601.
	UploadDate string `json:"uploadDate"`
	// Duration is an ISO 8601 duration such as PT1M30S.
	Duration string `json:"duration,omitempty"`
	EmbedURL string `json:"embedUrl,omitempty"`
}

type Address struct {
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

type Geo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EntityRef references a Person, Organization or Thing by @id.
// It decodes from a bare string, taken as the name.
type EntityRef struct {
	Type  string `json:"type,omitempty"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Image *Image `json:"image,omitempty"`
}

func (r *EntityRef) UnmarshalJSON(data []byte) error {
	if name, ok := decodeString(data); ok {
		*r = EntityRef{Name: name}
		return nil
	}
	type plain EntityRef
	return json.Unmarshal(data, (*plain)(r))
}

// StringList decodes from a single string or a sequence of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if s, ok := decodeString(data); ok {
		*l = StringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// value emits one string as itself and several as a sequence.
func (l StringList) value() any {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	default:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out
	}
}

type Brand struct {
	Name          string   `json:"name"`
	SchemaID      string   `json:"schemaId,omitempty"`
	URL           string   `json:"url,omitempty"`
	Logo          *Image   `json:"logo,omitempty"`
	Description   string   `json:"description,omitempty"`
	Slogan        string   `json:"slogan,omitempty"`
	AlternateName string   `json:"alternateName,omitempty"`
	SameAs        []string `json:"sameAs,omitempty"`
}

// UnmarshalJSON accepts a bare brand name.
func (b *Brand) UnmarshalJSON(data []byte) error {
	if name, ok := decodeString(data); ok {
		*b = Brand{Name: name}
		return nil
	}
	type plain Brand
	return json.Unmarshal(data, (*plain)(b))
}

type Product struct {
	ID string `json:"id"`
	// SchemaID overrides the derived @id.
	SchemaID             string           `json:"schemaId,omitempty"`
	ProductGroupSchemaID string           `json:"productGroupSchemaId,omitempty"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Handle               string           `json:"handle,omitempty"`
	URL                  string           `json:"url"`
	Images               []Image          `json:"images,omitempty"`
	Videos               []Video          `json:"videos,omitempty"`
	Brand                *Brand           `json:"brand,omitempty"`
	GTIN                 string           `json:"gtin,omitempty"`
	GTIN8                string           `json:"gtin8,omitempty"`
	GTIN12               string           `json:"gtin12,omitempty"`
	GTIN13               string           `json:"gtin13,omitempty"`
	GTIN14               string           `json:"gtin14,omitempty"`
	MPN                  string           `json:"mpn,omitempty"`
	SKU                  string           `json:"sku,omitempty"`
	Offers               OfferList        `json:"offers"`
	Reviews              []Review         `json:"reviews,omitempty"`
	Rating               *AggregateRating `json:"rating,omitempty"`
	// Variants turn the product into a ProductGroup.
	Variants []Variant `json:"variants,omitempty"`
	// ProductGroupID defaults to ID.
	ProductGroupID string `json:"productGroupId,omitempty"`
	Color          string `json:"color,omitempty"`
	Material       string `json:"material,omitempty"`
	Pattern        string `json:"pattern,omitempty"`
	Size           string `json:"size,omitempty"`
}

// Variant is one purchasable option of a ProductGroup.
type Variant struct {
	ID       string `json:"id"`
	SchemaID string `json:"schemaId,omitempty"`
	SKU      string `json:"sku"`
	GTIN     string `json:"gtin,omitempty"`
	GTIN8    string `json:"gtin8,omitempty"`
	GTIN12   string `json:"gtin12,omitempty"`
	GTIN13   string `json:"gtin13,omitempty"`
	GTIN14   string `json:"gtin14,omitempty"`
	Title    string `json:"title"`
	// URL defaults to "<parent url>?variant=<id>".
	URL      string `json:"url,omitempty"`
	Image    *Image `json:"image,omitempty"`
	Offers   Offer  `json:"offers"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Material string `json:"material,omitempty"`
}

// OfferList holds a product's offers in the shape they were given. A single
// object maps to one offer node; a sequence stays a sequence, even with one
// element.
type OfferList struct {
	Items  []Offer
	Single bool
}

// OneOffer is an OfferList given as a single object.
func OneOffer(offer Offer) OfferList {
	return OfferList{Items: []Offer{offer}, Single: true}
}

// OfferSequence is an OfferList given as a sequence.
func OfferSequence(offers ...Offer) OfferList {
	return OfferList{Items: offers}
}

func (l *OfferList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single Offer
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*l = OneOffer(single)
		return nil
	}
	var list []Offer
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return err
	}
	*l = OfferSequence(list...)
	return nil
}

// Offer prices accept JSON numbers or numeric strings.
type Offer struct {
	SchemaID string      `json:"schemaId,omitempty"`
	Price    json.Number `json:"price"`
	Currency string      `json:"currency"`
	// Availability is InStock, OutOfStock, PreOrder, BackOrder or Discontinued.
	Availability string `json:"availability"`
	// Quantity is emitted as inventoryLevel, including zero.
	Quantity           *int        `json:"quantity,omitempty"`
	PriceValidUntil    string      `json:"priceValidUntil,omitempty"`
	StrikethroughPrice json.Number `json:"strikethroughPrice,omitempty"`
	SalePrice          json.Number `json:"salePrice,omitempty"`
	URL                string      `json:"url,omitempty"`
	// ItemCondition is New, Used, Refurbished or Damaged.
	ItemCondition string        `json:"itemCondition,omitempty"`
	ShipsFrom     *Address      `json:"shipsFrom,omitempty"`
	Shipping      *Shipping     `json:"shipping,omitempty"`
	Returns       *ReturnPolicy `json:"returns,omitempty"`
}

type DayRange struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

type Shipping struct {
	Cost json.Number `json:"cost"`
	// Currency defaults to USD.
	Currency     string    `json:"currency,omitempty"`
	Destinations []string  `json:"destinations"`
	HandlingTime *DayRange `json:"handlingTime,omitempty"`
	DeliveryTime *DayRange `json:"deliveryTime,omitempty"`
}

type MonetaryAmount struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency,omitempty"`
}

// ReturnPolicy accepts both the schema.org field names and their aliases
// (ReturnWindowDays, Days, ReturnPolicyURL, Type).
type ReturnPolicy struct {
	ApplicableCountry StringList `json:"applicableCountry,omitempty"`
	// ReturnPolicyCategory is FiniteReturnWindow, UnlimitedReturnWindow or NotPermitted.
	ReturnPolicyCategory     string          `json:"returnPolicyCategory,omitempty"`
	MerchantReturnDays       *int            `json:"merchantReturnDays,omitempty"`
	MerchantReturnLink       string          `json:"merchantReturnLink,omitempty"`
	ReturnWindowDays         *int            `json:"returnWindowDays,omitempty"`
	ReturnPolicyURL          string          `json:"returnPolicyUrl,omitempty"`
	ReturnFees               string          `json:"returnFees,omitempty"`
	ReturnShippingFeesAmount *MonetaryAmount `json:"returnShippingFeesAmount,omitempty"`
	ReturnMethod             StringList      `json:"returnMethod,omitempty"`
	Days                     *int            `json:"days,omitempty"`
	// Type and RefundType are FullRefund, ExchangeOnly or StoreCredit.
	Type       string `json:"type,omitempty"`
	RefundType string `json:"refundType,omitempty"`
}

type Review struct {
	URL      string `json:"url,omitempty"`
	SchemaID string `json:"schemaId,omitempty"`
	// Key suffixes the derived @id ("#review-<key>"). Lists of reviews
	// sharing a URL get one from KeyReviews.
	Key           string    `json:"key,omitempty"`
	Title         string    `json:"title,omitempty"`
	Author        EntityRef `json:"author"`
	DatePublished string    `json:"datePublished"`
	ReviewBody    string    `json:"reviewBody"`
	Rating        float64   `json:"rating"`
	// BestRating defaults to 5 and WorstRating to 1.
	BestRating      float64 `json:"bestRating,omitempty"`
	WorstRating     float64 `json:"worstRating,omitempty"`
	IsVerifiedBuyer bool    `json:"isVerifiedBuyer,omitempty"`
}

type AggregateRating struct {
	URL         string  `json:"url,omitempty"`
	SchemaID    string  `json:"schemaId,omitempty"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
	RatingCount *int    `json:"ratingCount,omitempty"`
	BestRating  float64 `json:"bestRating,omitempty"`
	WorstRating float64 `json:"worstRating,omitempty"`
}

// Collection feeds both MapCollectionPage and MapItemList.
type Collection struct {
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	URL              string `json:"url"`
	SchemaID         string `json:"schemaId,omitempty"`
	ItemListSchemaID string `json:"itemListSchemaId,omitempty"`
	// ItemListKey disambiguates several lists on one page.
	ItemListKey         string    `json:"itemListKey,omitempty"`
	Image               *Image    `json:"image,omitempty"`
	Products            []Product `json:"products"`
	HasExplicitOrdering bool      `json:"hasExplicitOrdering,omitempty"`
}

type Article struct {
	Headline      string      `json:"headline"`
	Description   string      `json:"description"`
	URL           string      `json:"url"`
	SchemaID      string      `json:"schemaId,omitempty"`
	Language      string      `json:"language,omitempty"`
	Image         *Image      `json:"image,omitempty"`
	Video         *Video      `json:"video,omitempty"`
	DatePublished string      `json:"datePublished"`
	DateModified  string      `json:"dateModified"`
	Author        EntityRef   `json:"author"`
	Publisher     *EntityRef  `json:"publisher,omitempty"`
	About         []EntityRef `json:"about,omitempty"`
	Mentions      []EntityRef `json:"mentions,omitempty"`
	// Type is Article, BlogPosting, NewsArticle or TechArticle. Default Article.
	Type string `json:"type,omitempty"`
	// ArticleBody is plain text.
	ArticleBody string `json:"articleBody,omitempty"`
}

type Question struct {
	Question string `json:"question"`
	// Answer may contain HTML.
	Answer string `json:"answer"`
}

type FAQ struct {
	Title     string     `json:"title,omitempty"`
	URL       string     `json:"url,omitempty"`
	SchemaID  string     `json:"schemaId,omitempty"`
	Questions []Question `json:"questions"`
}

type Founder struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle,omitempty"`
}

type ContactPoint struct {
	Telephone         string     `json:"telephone"`
	ContactType       string     `json:"contactType"`
	Email             string     `json:"email,omitempty"`
	AreaServed        StringList `json:"areaServed,omitempty"`
	AvailableLanguage StringList `json:"availableLanguage,omitempty"`
	TollFree          bool       `json:"tollFree,omitempty"`
	HearingImpaired   bool       `json:"hearingImpaired,omitempty"`
}

type OpeningHours struct {
	DayOfWeek StringList `json:"dayOfWeek"`
	Opens     string     `json:"opens"`
	Closes    string     `json:"closes"`
}

type Organization struct {
	Name          string         `json:"name"`
	SchemaID      string         `json:"schemaId,omitempty"`
	URL           string         `json:"url"`
	Logo          Image          `json:"logo"`
	LegalName     string         `json:"legalName,omitempty"`
	AlternateName string         `json:"alternateName,omitempty"`
	Description   string         `json:"description,omitempty"`
	SameAs        []string       `json:"sameAs,omitempty"`
	Founders      []Founder      `json:"founders,omitempty"`
	ContactPoints []ContactPoint `json:"contactPoints,omitempty"`
	Address       *Address       `json:"address,omitempty"`
	// IsLocalBusiness switches the output to LocalBusiness.
	IsLocalBusiness bool `json:"isLocalBusiness,omitempty"`
	Geo             *Geo `json:"geo,omitempty"`
	// PriceRange defaults to "$$" for a LocalBusiness.
	PriceRange   string         `json:"priceRange,omitempty"`
	OpeningHours []OpeningHours `json:"openingHours,omitempty"`
}

type WebSiteSearch struct {
	URL        string `json:"url,omitempty"`
	SchemaID   string `json:"schemaId,omitempty"`
	Target     string `json:"target"`
	QueryInput string `json:"queryInput,omitempty"`
}

type WebSite struct {
	Name          string         `json:"name"`
	URL           string         `json:"url"`
	SchemaID      string         `json:"schemaId,omitempty"`
	AlternateName string         `json:"alternateName,omitempty"`
	Search        *WebSiteSearch `json:"search,omitempty"`
}

type SearchAction struct {
	URL      string `json:"url,omitempty"`
	SchemaID string `json:"schemaId,omitempty"`
	// Target is a URL template such as https://example.com/search?q={search_term_string}.
	Target string `json:"target"`
	// QueryInput defaults to "required name=search_term_string".
	QueryInput string `json:"queryInput,omitempty"`
}

type BreadcrumbItem struct {
	Name string `json:"name"`
	Item string `json:"item"`
}

type Breadcrumb struct {
	URL   string           `json:"url,omitempty"`
	Items []BreadcrumbItem `json:"items"`
}

type WebPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SchemaID    string `json:"schemaId,omitempty"`
	// Language defaults to en-US.
	Language      string      `json:"language,omitempty"`
	DatePublished string      `json:"datePublished,omitempty"`
	DateModified  string      `json:"dateModified,omitempty"`
	Publisher     *EntityRef  `json:"publisher,omitempty"`
	Breadcrumb    *Breadcrumb `json:"breadcrumb,omitempty"`
	// Breadcrumbs is used when Breadcrumb is nil; only the first is emitted.
	Breadcrumbs []Breadcrumb `json:"breadcrumbs,omitempty"`
}

type SaaSOffer struct {
	SchemaID        string      `json:"schemaId,omitempty"`
	Price           json.Number `json:"price"`
	Currency        string      `json:"currency"`
	PriceValidUntil string      `json:"priceValidUntil,omitempty"`
	// BillingDuration defaults to 1.
	BillingDuration int `json:"billingDuration,omitempty"`
	// BillingUnit is DAY, WEEK, MONTH or YEAR.
	BillingUnit string `json:"billingUnit,omitempty"`
}

type SaaS struct {
	Name                string           `json:"name"`
	Headline            string           `json:"headline"`
	URL                 string           `json:"url"`
	SchemaID            string           `json:"schemaId,omitempty"`
	Description         string           `json:"description,omitempty"`
	Screenshot          *Image           `json:"screenshot,omitempty"`
	Logo                *Image           `json:"logo,omitempty"`
	Video               *Video           `json:"video,omitempty"`
	OperatingSystem     string           `json:"operatingSystem"`
	ApplicationCategory string           `json:"applicationCategory"`
	SoftwareVersion     string           `json:"softwareVersion,omitempty"`
	Offers              SaaSOffer        `json:"offers"`
	Rating              *AggregateRating `json:"rating,omitempty"`
	Reviews             []Review         `json:"reviews,omitempty"`
}

func decodeString(data []byte) (string, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", false
	}
	return s, true
}
