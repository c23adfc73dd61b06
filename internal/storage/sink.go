package storage

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/fileutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/hashutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

/*
Responsibilities
- Persist graph documents
- Persist optional script tag snippets
- Ensure deterministic filenames

Output Characteristics
- Stable directory layout: <outputDir>/<hash12>.jsonld and <hash12>.html
- Idempotent writes
- Overwrite-safe reruns (atomic rename)
*/

const (
	graphExtension  = ".jsonld"
	scriptExtension = ".html"
	urlHashLength   = 12
)

type Sink interface {
	Write(
		outputDir string,
		doc Document,
		hashAlgo hashutil.HashAlgo,
	) (WriteResult, failure.ClassifiedError)
}

type LocalSink struct {
	metadataSink metadata.Sink
}

func NewLocalSink(
	metadataSink metadata.Sink,
) LocalSink {
	return LocalSink{
		metadataSink: metadataSink,
	}
}

func (s *LocalSink) Write(
	outputDir string,
	doc Document,
	hashAlgo hashutil.HashAlgo,
) (WriteResult, failure.ClassifiedError) {
	writeResult, storageError := write(outputDir, doc, hashAlgo)
	if storageError != nil {
		s.metadataSink.RecordError(
			time.Now(),
			"storage",
			"LocalSink.Write",
			mapStorageErrorToMetadataCause(storageError),
			storageError.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, doc.SourceURL),
				metadata.NewAttr(metadata.AttrWritePath, storageError.Path),
			},
		)
		return WriteResult{}, storageError
	}
	s.metadataSink.RecordArtifact(
		metadata.ArtifactGraph,
		writeResult.Path(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrWritePath, writeResult.Path()),
			metadata.NewAttr(metadata.AttrURL, doc.CanonicalURL),
		},
	)
	if writeResult.ScriptPath() != "" {
		s.metadataSink.RecordArtifact(
			metadata.ArtifactScriptTag,
			writeResult.ScriptPath(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrWritePath, writeResult.ScriptPath()),
				metadata.NewAttr(metadata.AttrURL, doc.CanonicalURL),
			},
		)
	}
	return writeResult, nil
}

// FileName returns "<hash12>.jsonld" for a canonical URL.
func FileName(canonicalURL string, hashAlgo hashutil.HashAlgo) (string, error) {
	urlHash, err := urlHashOf(canonicalURL, hashAlgo)
	if err != nil {
		return "", err
	}
	return urlHash + graphExtension, nil
}

func urlHashOf(canonicalURL string, hashAlgo hashutil.HashAlgo) (string, error) {
	return hashutil.ShortHash(hashAlgo, urlHashLength, canonicalURL)
}

func write(
	outputDir string,
	doc Document,
	hashAlgo hashutil.HashAlgo,
) (WriteResult, *StorageError) {
	urlHash, err := urlHashOf(doc.CanonicalURL, hashAlgo)
	if err != nil {
		return WriteResult{}, &StorageError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseHashComputationFailed,
			Path:      "",
		}
	}

	if err := fileutil.EnsureDir(outputDir); err != nil {
		return WriteResult{}, fromFileError(err, outputDir)
	}

	fullPath := filepath.Join(outputDir, urlHash+graphExtension)
	if err := fileutil.WriteFileAtomic(fullPath, doc.JSON); err != nil {
		return WriteResult{}, fromFileError(err, fullPath)
	}

	scriptPath := ""
	if len(doc.ScriptTag) > 0 {
		scriptPath = filepath.Join(outputDir, urlHash+scriptExtension)
		if err := fileutil.WriteFileAtomic(scriptPath, doc.ScriptTag); err != nil {
			return WriteResult{}, fromFileError(err, scriptPath)
		}
	}

	contentHash, err := hashutil.HashBytes(doc.JSON, hashAlgo)
	if err != nil {
		return WriteResult{}, &StorageError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseHashComputationFailed,
			Path:      fullPath,
		}
	}

	return NewWriteResult(urlHash, fullPath, scriptPath, contentHash), nil
}

func fromFileError(err error, path string) *StorageError {
	cause := ErrCauseWriteFailure
	retryable := false
	var fileErr *fileutil.FileError
	if errors.As(err, &fileErr) {
		switch fileErr.Cause {
		case fileutil.ErrCauseDiskFull:
			cause = ErrCauseDiskFull
			retryable = true
		case fileutil.ErrCausePathError:
			cause = ErrCausePathError
		}
	}
	return &StorageError{
		Message:   err.Error(),
		Retryable: retryable,
		Cause:     cause,
		Path:      path,
	}
}
