package manifest

import (
	"fmt"
	"strings"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

type ManifestErrorCause string

const (
	ErrCauseReadFailure    ManifestErrorCause = "manifest read failed"
	ErrCauseParseFailure   ManifestErrorCause = "manifest parse failed"
	ErrCauseSchemaMismatch ManifestErrorCause = "manifest does not match schema"
	ErrCauseDecodeFailure  ManifestErrorCause = "manifest decode failed"
	ErrCauseMappingFailure ManifestErrorCause = "entity mapping failed"
	ErrCauseContentFailure ManifestErrorCause = "content conversion failed"
)

type ManifestError struct {
	Message    string
	Retryable  bool
	Cause      ManifestErrorCause
	Path       string
	Violations []Violation
	Err        error
}

func (e *ManifestError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "manifest error: %s", e.Cause)
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	for _, v := range e.Violations {
		fmt.Fprintf(&b, "\n  - %s: %s", pointerOrRoot(v.Path), v.Message)
	}
	return b.String()
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

func (e *ManifestError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func pointerOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func mapManifestErrorToMetadataCause(err *ManifestError) metadata.ErrorCause {
	switch err.Cause {
	case ErrCauseReadFailure:
		return metadata.CauseStorageFailure
	case ErrCauseParseFailure, ErrCauseSchemaMismatch, ErrCauseDecodeFailure, ErrCauseMappingFailure:
		return metadata.CauseInvalidInput
	case ErrCauseContentFailure:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
