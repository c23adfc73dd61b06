package storage_test

import (
	"time"

	"github.com/rohmanhakim/jsonld-kit/pkg/hashutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
)

// metadataSinkMock records the calls storage makes on metadata.Sink
type metadataSinkMock struct {
	metadata.NoopSink
	errorCauses   []metadata.ErrorCause
	errorAttrs    [][]metadata.Attribute
	artifactKinds []metadata.ArtifactKind
	artifactPaths []string
}

func (m *metadataSinkMock) RecordError(
	_ time.Time,
	_ string,
	_ string,
	cause metadata.ErrorCause,
	_ string,
	attrs []metadata.Attribute,
) {
	m.errorCauses = append(m.errorCauses, cause)
	m.errorAttrs = append(m.errorAttrs, attrs)
}

func (m *metadataSinkMock) RecordArtifact(kind metadata.ArtifactKind, path string, _ []metadata.Attribute) {
	m.artifactKinds = append(m.artifactKinds, kind)
	m.artifactPaths = append(m.artifactPaths, path)
}

func expectedURLHash(canonicalURL string, algo hashutil.HashAlgo) string {
	h, err := hashutil.ShortHash(algo, 12, canonicalURL)
	if err != nil {
		panic(err)
	}
	return h
}
