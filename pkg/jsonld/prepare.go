package jsonld

import (
	"strconv"

	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

// Prepare cleans value, validates the result and reacts to issues per mode:
// silent returns the cleaned value, warn additionally records one
// validation advisory outside production, throw returns a *ValidationError.
func Prepare(value any, opts PrepareOptions) (any, error) {
	validateOpts := DefaultValidateOptions()
	if opts.Validate != nil {
		validateOpts = *opts.Validate
	}

	cleaned := Clean(value, opts.Clean)
	issues := Validate(cleaned, validateOpts)
	if len(issues) == 0 {
		return cleaned, nil
	}

	switch opts.Mode {
	case PrepareThrow:
		return nil, &ValidationError{Issues: issues}
	case PrepareSilent:
		return cleaned, nil
	default:
		if !opts.Production {
			warn(opts.Sink, issues)
		}
		return cleaned, nil
	}
}

func warn(sink metadata.Sink, issues []Issue) {
	if sink == nil {
		recorder := metadata.NewRecorder("jsonld", "warn")
		sink = &recorder
	}
	sink.RecordAdvisory(
		metadata.AdvisoryValidation,
		"Invalid JSON-LD:\n"+FormatIssues(issues),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrIssues, strconv.Itoa(len(issues))),
		},
	)
}
