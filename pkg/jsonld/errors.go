package jsonld

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
)

type NodeErrorCause string

const (
	ErrCauseInvalidNodeArgument NodeErrorCause = "invalid node argument"
	ErrCauseUnserializable      NodeErrorCause = "value cannot be serialized"
)

type NodeError struct {
	Message   string
	Retryable bool
	Cause     NodeErrorCause
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("jsonld error: %s: %s", e.Cause, e.Message)
}

func (e *NodeError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// ValidationError aggregates every issue found in one document.
type ValidationError struct {
	Issues []Issue
}

// Error lists one issue per line.
func (e *ValidationError) Error() string {
	return FormatIssues(e.Issues)
}

func (e *ValidationError) Severity() failure.Severity {
	return failure.SeverityFatal
}
