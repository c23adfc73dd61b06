package fileutil

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
)

type FileErrorCause string

const (
	ErrCausePathError    FileErrorCause = "path error"
	ErrCauseReadFailure  FileErrorCause = "read failure"
	ErrCauseWriteFailure FileErrorCause = "write failure"
	ErrCauseDiskFull     FileErrorCause = "disk is full"
)

type FileError struct {
	Message   string
	Retryable bool
	Cause     FileErrorCause
	Path      string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file error: %s: %s: %s", e.Cause, e.Path, e.Message)
}

func (e *FileError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}
