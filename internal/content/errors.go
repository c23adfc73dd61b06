package content

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

type ContentErrorCause string

const (
	ErrCauseParseFailure      ContentErrorCause = "html parse failed"
	ErrCauseConversionFailure ContentErrorCause = "conversion failed"
)

type ContentError struct {
	Message   string
	Retryable bool
	Cause     ContentErrorCause
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content error: %s: %s", e.Cause, e.Message)
}

func (e *ContentError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func mapContentErrorToMetadataCause(err *ContentError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseParseFailure, ErrCauseConversionFailure:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
