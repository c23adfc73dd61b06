package schemaorg

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
)

type MapErrorCause string

const (
	// ErrCauseIdentifier indicates the @id could not be derived from the input URL.
	ErrCauseIdentifier MapErrorCause = "identifier derivation failed"
)

type MapError struct {
	Message   string
	Retryable bool
	Cause     MapErrorCause
	Entity    string
	Err       error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("schemaorg error: %s: %s: %s", e.Entity, e.Cause, e.Message)
}

func (e *MapError) Unwrap() error {
	return e.Err
}

func (e *MapError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

func identifierError(entity string, err error) *MapError {
	return &MapError{
		Message:   err.Error(),
		Retryable: false,
		Cause:     ErrCauseIdentifier,
		Entity:    entity,
		Err:       err,
	}
}
