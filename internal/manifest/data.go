package manifest

import (
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
)

// Manifest declares the structured data of one page.
type Manifest struct {
	// URL is the page the document describes. It names the output file.
	URL           string                   `json:"url"`
	Website       *schemaorg.WebSite       `json:"website,omitempty"`
	Organization  *schemaorg.Organization  `json:"organization,omitempty"`
	WebPage       *schemaorg.WebPage       `json:"webPage,omitempty"`
	Breadcrumbs   []schemaorg.Breadcrumb   `json:"breadcrumbs,omitempty"`
	Products      []schemaorg.Product      `json:"products,omitempty"`
	Collections   []schemaorg.Collection   `json:"collections,omitempty"`
	ItemLists     []schemaorg.Collection   `json:"itemLists,omitempty"`
	Articles      []Article                `json:"articles,omitempty"`
	FAQs          []FAQ                    `json:"faqs,omitempty"`
	SaaS          []schemaorg.SaaS         `json:"saas,omitempty"`
	Brands        []schemaorg.Brand        `json:"brands,omitempty"`
	Reviews       []schemaorg.Review       `json:"reviews,omitempty"`
	SearchActions []schemaorg.SearchAction `json:"searchActions,omitempty"`
	// Nodes are appended to the graph as written.
	Nodes []jsonld.Node `json:"nodes,omitempty"`
}

// Article adds an HTML body source to schemaorg.Article.
type Article struct {
	schemaorg.Article
	// ArticleBodyHTML is converted to text when ArticleBody is empty.
	ArticleBodyHTML string `json:"articleBodyHtml,omitempty"`
}

type AnswerFormat string

const (
	AnswerHTML     AnswerFormat = "html"
	AnswerMarkdown AnswerFormat = "markdown"
)

// FAQ adds the answer source format to schemaorg.FAQ.
type FAQ struct {
	schemaorg.FAQ
	// AnswerFormat defaults to html.
	AnswerFormat AnswerFormat `json:"answerFormat,omitempty"`
}

// Violation is one manifest schema failure.
type Violation struct {
	// Path is a JSON pointer into the manifest, "" for the root.
	Path    string
	Message string
}
