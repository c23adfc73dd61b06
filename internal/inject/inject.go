package inject

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

/*
Responsibilities
- Render a JSON-LD value as a script element
- Replace an existing script carrying the same id
- Otherwise append the script as the last child of <head>

The parser synthesizes <html> and <head> for fragments, so every input
has an insertion point. Output is the re-rendered document.
*/

type Result struct {
	HTML []byte
	// Replaced reports whether an existing element with the same id was swapped out.
	Replaced bool
}

type Injector struct {
	metadataSink metadata.Sink
}

func NewInjector(
	metadataSink metadata.Sink,
) Injector {
	return Injector{
		metadataSink: metadataSink,
	}
}

func (i *Injector) Inject(
	source string,
	page []byte,
	value any,
	opts jsonld.ScriptTagOptions,
) (Result, failure.ClassifiedError) {
	result, err := inject(page, value, opts)
	if err != nil {
		var injectError *InjectError
		errors.As(err, &injectError)
		i.metadataSink.RecordError(
			time.Now(),
			"inject",
			"Injector.Inject",
			mapInjectErrorToMetadataCause(injectError),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrPath, source),
			},
		)
		return Result{}, injectError
	}
	return result, nil
}

func inject(page []byte, value any, opts jsonld.ScriptTagOptions) (Result, error) {
	tag, err := jsonld.ToScriptTag(value, opts)
	if err != nil {
		return Result{}, &InjectError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseSerializeFailure,
		}
	}

	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return Result{}, &InjectError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseParseFailure,
		}
	}
	doc := goquery.NewDocumentFromNode(root)
	head := doc.Find("head").First()
	if head.Length() == 0 {
		return Result{}, &InjectError{
			Message:   "document has no head element",
			Retryable: false,
			Cause:     ErrCauseParseFailure,
		}
	}
	headNode := head.Nodes[0]

	script, err := parseScript(tag, headNode)
	if err != nil {
		return Result{}, err
	}

	replaced := false
	if opts.ID != "" {
		existing := doc.Find("script").FilterFunction(func(_ int, s *goquery.Selection) bool {
			id, ok := s.Attr("id")
			return ok && id == opts.ID
		}).First()
		if existing.Length() > 0 {
			old := existing.Nodes[0]
			old.Parent.InsertBefore(script, old)
			old.Parent.RemoveChild(old)
			replaced = true
		}
	}
	if !replaced {
		headNode.AppendChild(script)
	}

	var out bytes.Buffer
	if err := html.Render(&out, root); err != nil {
		return Result{}, &InjectError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseRenderFailure,
		}
	}
	return Result{HTML: out.Bytes(), Replaced: replaced}, nil
}

func parseScript(tag string, context *html.Node) (*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(tag), context)
	if err != nil {
		return nil, &InjectError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseParseFailure,
		}
	}
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Script {
			return n, nil
		}
	}
	return nil, &InjectError{
		Message:   "rendered tag did not parse as a script element",
		Retryable: false,
		Cause:     ErrCauseParseFailure,
	}
}
