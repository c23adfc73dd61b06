package content

import (
	"bytes"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

/*
Content conversions applied to manifest fields before mapping.

- Article bodies arrive as HTML and leave as readable text (Markdown),
  because articleBody is a plain text property.
- FAQ answers arrive as Markdown and leave as HTML, because
  acceptedAnswer.text allows a small HTML subset.

Both directions are deterministic. Page chrome (script, style, nav,
header, footer, aside, noscript, template) is dropped before conversion.
*/

type Converter struct {
	metadataSink metadata.Sink
	htmlToText   *converter.Converter
}

func NewConverter(metadataSink metadata.Sink) *Converter {
	if metadataSink == nil {
		metadataSink = &metadata.NoopSink{}
	}
	return &Converter{
		metadataSink: metadataSink,
		htmlToText: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// ArticleBody converts an HTML fragment or document into text suitable for
// articleBody.
func (c *Converter) ArticleBody(rawHTML string) (string, error) {
	text, err := c.articleBody(rawHTML)
	if err != nil {
		c.metadataSink.RecordError(
			time.Now(),
			"content",
			"Converter.ArticleBody",
			mapContentErrorToMetadataCause(err),
			err.Error(),
			[]metadata.Attribute{},
		)
		return "", err
	}
	return text, nil
}

func (c *Converter) articleBody(rawHTML string) (string, *ContentError) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", &ContentError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseParseFailure,
		}
	}
	stripChrome(doc)

	text, err := c.htmlToText.ConvertNode(doc)
	if err != nil {
		return "", &ContentError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseConversionFailure,
		}
	}
	return string(bytes.TrimSpace(text)), nil
}

// AnswerHTML renders a Markdown FAQ answer as HTML. Plain text without
// Markdown syntax comes back wrapped in a single paragraph.
func (c *Converter) AnswerHTML(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML,
	})
	return strings.TrimSpace(string(markdown.ToHTML([]byte(md), p, renderer)))
}

var chromeElements = map[atom.Atom]struct{}{
	atom.Script:   {},
	atom.Style:    {},
	atom.Nav:      {},
	atom.Header:   {},
	atom.Footer:   {},
	atom.Aside:    {},
	atom.Noscript: {},
	atom.Template: {},
}

// stripChrome removes non-content elements from the tree in place.
func stripChrome(n *html.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if child.Type == html.ElementNode {
			if _, drop := chromeElements[child.DataAtom]; drop {
				n.RemoveChild(child)
				child = next
				continue
			}
		}
		if child.Type == html.CommentNode {
			n.RemoveChild(child)
			child = next
			continue
		}
		stripChrome(child)
		child = next
	}
}
