package schemaorg

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
)

// Article types accepted by MapArticle.
const (
	ArticleTypeArticle     = "Article"
	ArticleTypeBlogPosting = "BlogPosting"
	ArticleTypeNews        = "NewsArticle"
	ArticleTypeTech        = "TechArticle"
)

// MapArticle returns an Article, BlogPosting, NewsArticle or TechArticle.
// Author and publisher default to Person when their type is empty.
func (m *Mapper) MapArticle(in Article) (jsonld.Node, error) {
	id, err := m.resolveID("Article", in.SchemaID, nodeid.KindArticle, in.URL, "")
	if err != nil {
		return nil, err
	}

	n := newNode(firstNonEmpty(in.Type, ArticleTypeArticle), id)
	putString(n, "headline", in.Headline)
	putString(n, "description", in.Description)
	putString(n, "url", in.URL)
	putString(n, "inLanguage", in.Language)
	putNode(n, "image", optionalImage(in.Image))
	putNode(n, "video", optionalVideo(in.Video))
	putString(n, "datePublished", in.DatePublished)
	putString(n, "dateModified", in.DateModified)
	n["author"] = mapParty(in.Author)
	if in.Publisher != nil {
		publisher := mapParty(*in.Publisher)
		putNode(publisher, "logo", optionalImage(in.Publisher.Image))
		n["publisher"] = publisher
	}
	putNodes(n, "about", mapThings(in.About))
	putNodes(n, "mentions", mapThings(in.Mentions))
	putString(n, "articleBody", in.ArticleBody)
	return n, nil
}

// MapFAQPage returns an FAQPage. The @id is only derived when the page URL
// is known.
func (m *Mapper) MapFAQPage(in FAQ) (jsonld.Node, error) {
	id, err := m.optionalID("FAQPage", in.SchemaID, nodeid.KindFAQPage, in.URL, "")
	if err != nil {
		return nil, err
	}

	questions := make([]jsonld.Node, len(in.Questions))
	for i, q := range in.Questions {
		questions[i] = jsonld.Node{
			"@type": "Question",
			"name":  q.Question,
			"acceptedAnswer": jsonld.Node{
				"@type": "Answer",
				"text":  q.Answer,
			},
		}
	}

	n := newNode("FAQPage", id)
	putString(n, "name", in.Title)
	putString(n, "url", in.URL)
	n["mainEntity"] = questions
	return n, nil
}

func mapParty(ref EntityRef) jsonld.Node {
	n := newNode(firstNonEmpty(ref.Type, "Person"), ref.ID)
	putString(n, "name", ref.Name)
	putString(n, "url", ref.URL)
	return n
}

func mapThings(refs []EntityRef) []jsonld.Node {
	out := make([]jsonld.Node, len(refs))
	for i, ref := range refs {
		n := newNode("Thing", ref.ID)
		putString(n, "name", ref.Name)
		putString(n, "url", ref.URL)
		out[i] = n
	}
	return out
}
