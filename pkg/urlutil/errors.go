package urlutil

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
)

type UrlErrorCause string

const (
	// ErrCauseInvalidURL indicates the input is not a syntactically valid absolute URL.
	// Callers never recover from it internally; it is propagated to the immediate caller.
	ErrCauseInvalidURL UrlErrorCause = "invalid URL"
	// ErrCauseMissingOrigin indicates an origin was requested for a URL without a host.
	ErrCauseMissingOrigin UrlErrorCause = "URL has no origin"
)

type UrlError struct {
	Message   string
	Retryable bool
	Cause     UrlErrorCause
	Input     string
}

func (e *UrlError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("url error: %s: %q", e.Cause, e.Input)
	}
	return fmt.Sprintf("url error: %s: %q: %s", e.Cause, e.Input, e.Message)
}

func (e *UrlError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}
