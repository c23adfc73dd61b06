package manifest

import (
	"fmt"
	"time"

	"github.com/rohmanhakim/jsonld-kit/internal/content"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
)

/*
Builder maps a Manifest into JSON-LD nodes.

Order is fixed so that identical manifests produce identical graphs:
website, organization, webPage, breadcrumbs, products, collections,
itemLists, articles, faqs, saas, brands, reviews, searchActions, nodes.
Duplicates by @id are resolved later by jsonld.CreateGraph (first wins).
*/
type Builder struct {
	mapper       *schemaorg.Mapper
	converter    *content.Converter
	metadataSink metadata.Sink
}

func NewBuilder(mapper *schemaorg.Mapper, converter *content.Converter, metadataSink metadata.Sink) *Builder {
	if metadataSink == nil {
		metadataSink = &metadata.NoopSink{}
	}
	if mapper == nil {
		mapper = schemaorg.Default()
	}
	if converter == nil {
		converter = content.NewConverter(metadataSink)
	}
	return &Builder{
		mapper:       mapper,
		converter:    converter,
		metadataSink: metadataSink,
	}
}

// Graph builds the manifest's nodes and composes them into a graph document.
func (b *Builder) Graph(m Manifest) (jsonld.Graph, error) {
	nodes, err := b.Nodes(m)
	if err != nil {
		return jsonld.Graph{}, err
	}
	return jsonld.CreateGraph(nodes...), nil
}

// Nodes maps every entity of the manifest in the fixed order.
func (b *Builder) Nodes(m Manifest) ([]any, error) {
	var out []any
	add := func(entity string, n jsonld.Node, err error) error {
		if err != nil {
			return b.fail(m, ErrCauseMappingFailure, entity, err)
		}
		out = append(out, n)
		return nil
	}

	if m.Website != nil {
		n, err := b.mapper.MapWebSite(*m.Website)
		if err := add("website", n, err); err != nil {
			return nil, err
		}
	}
	if m.Organization != nil {
		n, err := b.mapper.MapOrganization(*m.Organization)
		if err := add("organization", n, err); err != nil {
			return nil, err
		}
	}
	if m.WebPage != nil {
		n, err := b.mapper.MapWebPage(*m.WebPage)
		if err := add("webPage", n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.Breadcrumbs {
		n, err := b.mapper.MapBreadcrumbList(in)
		if err := add(indexed("breadcrumbs", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.Products {
		n, err := b.mapper.MapProduct(in)
		if err := add(indexed("products", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.Collections {
		n, err := b.mapper.MapCollectionPage(in)
		if err := add(indexed("collections", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.ItemLists {
		n, err := b.mapper.MapItemList(in)
		if err := add(indexed("itemLists", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.Articles {
		article, err := b.article(in)
		if err != nil {
			return nil, b.fail(m, ErrCauseContentFailure, indexed("articles", i), err)
		}
		n, err := b.mapper.MapArticle(article)
		if err := add(indexed("articles", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.FAQs {
		n, err := b.mapper.MapFAQPage(b.faq(in))
		if err := add(indexed("faqs", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.SaaS {
		n, err := b.mapper.MapSaaS(in)
		if err := add(indexed("saas", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.Brands {
		n, err := b.mapper.MapBrand(in)
		if err := add(indexed("brands", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range schemaorg.KeyReviews(m.Reviews) {
		n, err := b.mapper.MapReview(in)
		if err := add(indexed("reviews", i), n, err); err != nil {
			return nil, err
		}
	}
	for i, in := range m.SearchActions {
		n, err := b.mapper.MapSearchAction(in)
		if err := add(indexed("searchActions", i), n, err); err != nil {
			return nil, err
		}
	}
	for _, n := range m.Nodes {
		out = append(out, n)
	}
	return out, nil
}

func (b *Builder) article(in Article) (schemaorg.Article, error) {
	article := in.Article
	if article.ArticleBody == "" && in.ArticleBodyHTML != "" {
		body, err := b.converter.ArticleBody(in.ArticleBodyHTML)
		if err != nil {
			return schemaorg.Article{}, err
		}
		article.ArticleBody = body
	}
	return article, nil
}

func (b *Builder) faq(in FAQ) schemaorg.FAQ {
	faq := in.FAQ
	if in.AnswerFormat != AnswerMarkdown {
		return faq
	}
	questions := make([]schemaorg.Question, len(faq.Questions))
	for i, q := range faq.Questions {
		questions[i] = schemaorg.Question{
			Question: q.Question,
			Answer:   b.converter.AnswerHTML(q.Answer),
		}
	}
	faq.Questions = questions
	return faq
}

func (b *Builder) fail(m Manifest, cause ManifestErrorCause, entity string, err error) *ManifestError {
	manifestErr := &ManifestError{
		Message:   fmt.Sprintf("%s: %s", entity, err.Error()),
		Retryable: false,
		Cause:     cause,
		Err:       err,
	}
	b.metadataSink.RecordError(
		time.Now(),
		"manifest",
		"Builder.Nodes",
		mapManifestErrorToMetadataCause(manifestErr),
		manifestErr.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrManifest, m.URL),
			metadata.NewAttr(metadata.AttrField, entity),
		},
	)
	return manifestErr
}

func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
