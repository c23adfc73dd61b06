package inject

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

type InjectErrorCause string

const (
	ErrCauseSerializeFailure InjectErrorCause = "serialize failed"
	ErrCauseParseFailure     InjectErrorCause = "html parse failed"
	ErrCauseRenderFailure    InjectErrorCause = "html render failed"
)

type InjectError struct {
	Message   string
	Retryable bool
	Cause     InjectErrorCause
}

func (e *InjectError) Error() string {
	return fmt.Sprintf("inject error: %s: %s", e.Cause, e.Message)
}

func (e *InjectError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// mapInjectErrorToMetadataCause maps inject-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapInjectErrorToMetadataCause(err *InjectError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseSerializeFailure:
		return metadata.CauseInvalidInput
	case ErrCauseParseFailure, ErrCauseRenderFailure:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
