package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed manifest.schema.json
var schemaSource []byte

const schemaURL = "https://jsonld-kit.local/manifest.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaSource))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
})

// SchemaSource returns the embedded manifest JSON Schema.
func SchemaSource() []byte {
	return bytes.Clone(schemaSource)
}

// validateSchema checks a JSON manifest document against the embedded
// schema. Violations are sorted by path, then message.
func validateSchema(doc []byte) ([]Violation, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return nil, err
	}

	err = schema.Validate(instance)
	if err == nil {
		return nil, nil
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, err
	}

	printer := message.NewPrinter(language.English)
	violations := collectViolations(validationErr, printer, nil)
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Path != violations[j].Path {
			return violations[i].Path < violations[j].Path
		}
		return violations[i].Message < violations[j].Message
	})
	return violations, nil
}

// collectViolations flattens the cause tree into its leaves.
func collectViolations(e *jsonschema.ValidationError, p *message.Printer, out []Violation) []Violation {
	if len(e.Causes) == 0 {
		path := ""
		if len(e.InstanceLocation) > 0 {
			path = "/" + strings.Join(e.InstanceLocation, "/")
		}
		return append(out, Violation{
			Path:    path,
			Message: e.ErrorKind.LocalizedString(p),
		})
	}
	for _, cause := range e.Causes {
		out = collectViolations(cause, p, out)
	}
	return out
}
