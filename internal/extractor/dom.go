package extractor

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

/*
Responsibilities
- Parse HTML into a DOM tree
- Locate every <script type="application/ld+json"> element
- Decode each payload independently

A malformed block never hides its siblings: it is reported on the
block and recorded, and extraction continues.
*/

const ldJSONMediaType = "application/ld+json"

type DomExtractor struct {
	metadataSink metadata.Sink
}

func NewDomExtractor(
	metadataSink metadata.Sink,
) DomExtractor {
	return DomExtractor{
		metadataSink: metadataSink,
	}
}

// Extract returns the ld+json blocks of htmlByte in document order.
// source only labels diagnostics.
func (d *DomExtractor) Extract(
	source string,
	htmlByte []byte,
) (ExtractionResult, failure.ClassifiedError) {
	result, err := extract(htmlByte)
	if err != nil {
		var extractionError *ExtractionError
		errors.As(err, &extractionError)
		d.record(source, extractionError)
		return ExtractionResult{}, extractionError
	}
	for _, block := range result.Failed() {
		d.record(source, block.Err)
	}
	return result, nil
}

func (d *DomExtractor) record(source string, err *ExtractionError) {
	d.metadataSink.RecordError(
		time.Now(),
		"extractor",
		"DomExtractor.Extract",
		mapExtractionErrorToMetadataCause(err),
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrPath, source),
		},
	)
}

func extract(htmlByte []byte) (ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlByte))
	if err != nil {
		return ExtractionResult{}, &ExtractionError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseNotHTML,
			Index:     -1,
		}
	}

	var blocks []Block
	doc.Find("script[type]").Each(func(_ int, s *goquery.Selection) {
		if !isLDJSON(s.AttrOr("type", "")) {
			return
		}
		id, _ := s.Attr("id")
		blocks = append(blocks, decodeBlock(len(blocks), id, s.Text()))
	})
	return ExtractionResult{Blocks: blocks}, nil
}

// isLDJSON matches the media type case-insensitively and ignores parameters.
func isLDJSON(typeAttr string) bool {
	mediaType, _, _ := strings.Cut(typeAttr, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), ldJSONMediaType)
}

func decodeBlock(index int, id string, raw string) Block {
	block := Block{
		Index: index,
		ID:    id,
		Raw:   raw,
	}
	value, err := decodeJSON(raw)
	if err != nil {
		block.Err = &ExtractionError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseMalformedJSON,
			Index:     index,
		}
		return block
	}
	block.Value = value
	return block
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number.
func decodeJSON(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	// Some CMSes wrap the payload in an HTML comment.
	trimmed = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "<!--"), "-->"))
	if trimmed == "" {
		return nil, errors.New("empty payload")
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after offset " + strconv.FormatInt(dec.InputOffset(), 10))
	}
	return value, nil
}
