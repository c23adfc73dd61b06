package extractor

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

type ExtractionErrorCause string

const (
	ErrCauseNotHTML       ExtractionErrorCause = "not html"
	ErrCauseMalformedJSON ExtractionErrorCause = "malformed json"
)

type ExtractionError struct {
	Message   string
	Retryable bool
	Cause     ExtractionErrorCause
	// Index is the block position for ErrCauseMalformedJSON, -1 otherwise.
	Index int
}

func (e *ExtractionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("extraction error: %s in block %d: %s", e.Cause, e.Index, e.Message)
	}
	return fmt.Sprintf("extraction error: %s: %s", e.Cause, e.Message)
}

func (e *ExtractionError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// mapExtractionErrorToMetadataCause maps extractor-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapExtractionErrorToMetadataCause(err *ExtractionError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseNotHTML:
		return metadata.CauseInvalidInput
	case ErrCauseMalformedJSON:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
