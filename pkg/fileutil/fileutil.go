package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
)

// GetFileExtension extracts the file extension from a path, or empty string if none
func GetFileExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	// Remove the leading dot
	return strings.TrimPrefix(ext, ".")
}

// IsYAML reports whether path carries a .yaml or .yml extension, case-insensitively.
func IsYAML(path string) bool {
	switch strings.ToLower(GetFileExtension(path)) {
	case "yaml", "yml":
		return true
	default:
		return false
	}
}

// IsHTML reports whether path carries a .html or .htm extension, case-insensitively.
func IsHTML(path string) bool {
	switch strings.ToLower(GetFileExtension(path)) {
	case "html", "htm":
		return true
	default:
		return false
	}
}

// EnsureDir check if a given directory plus the following path exist, then create one if not
func EnsureDir(dir string, path ...string) failure.ClassifiedError {
	targetPath := []string{dir}
	targetPath = append(targetPath, path...)

	target := filepath.Join(targetPath...)
	if err := os.MkdirAll(target, 0755); err != nil {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: false,
			Cause:     ErrCausePathError,
			Path:      target,
		}
	}
	return nil
}

// ReadFile reads path whole, classifying failures as FileError.
func ReadFile(path string) ([]byte, failure.ClassifiedError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      path,
		}
	}
	return data, nil
}

// WriteFileAtomic writes data to a temporary sibling of path and renames it
// into place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte) failure.ClassifiedError {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return writeError(path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return writeError(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return writeError(path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return writeError(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return writeError(path, err)
	}
	return nil
}

func writeError(path string, err error) *FileError {
	if errors.Is(err, syscall.ENOSPC) {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: true,
			Cause:     ErrCauseDiskFull,
			Path:      path,
		}
	}
	return &FileError{
		Message:   fmt.Sprintf("%v", err),
		Retryable: false,
		Cause:     ErrCauseWriteFailure,
		Path:      path,
	}
}
