package pipeline

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

type PipelineErrorCause string

const (
	ErrCauseDocumentsFailed  PipelineErrorCause = "documents failed"
	ErrCauseValidationFailed PipelineErrorCause = "validation failed"
	ErrCauseAborted          PipelineErrorCause = "batch aborted"
	ErrCauseCanonicalURL     PipelineErrorCause = "canonical url"
	ErrCauseSerialize        PipelineErrorCause = "serialize failed"
)

// PipelineError is returned once per batch, after every manifest was
// attempted, or immediately when the batch cannot continue.
type PipelineError struct {
	Message   string
	Retryable bool
	Cause     PipelineErrorCause
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline error: %s: %s", e.Cause, e.Message)
}

func (e *PipelineError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// mapPipelineErrorToMetadataCause maps pipeline-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapPipelineErrorToMetadataCause(err *PipelineError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseValidationFailed:
		return metadata.CauseInvariantViolation
	case ErrCauseCanonicalURL:
		return metadata.CauseInvalidInput
	case ErrCauseSerialize:
		return metadata.CauseInvalidInput
	default:
		return metadata.CauseUnknown
	}
}
