package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rohmanhakim/jsonld-kit/internal/config"
	"github.com/rohmanhakim/jsonld-kit/internal/storage"
	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/hashutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"github.com/stretchr/testify/require"
)

const (
	validManifest = `{
  "url": "https://Example.com/a?utm_source=news",
  "webPage": { "title": "A", "url": "https://example.com/a" }
}`
	invalidNodeManifest = `{
  "url": "https://example.com/b",
  "nodes": [{ "@type": "Thing", "@id": "relative-id" }]
}`
)

// metadataSpy records what the pipeline and its stages emit.
type metadataSpy struct {
	metadata.NoopSink
	errorActions []string
	advisories   []metadata.AdvisoryKind
	artifacts    []metadata.ArtifactKind
	statsCalls   int
	documents    int
	nodes        int
	issues       int
	errors       int
}

func (m *metadataSpy) RecordError(
	_ time.Time,
	_ string,
	action string,
	_ metadata.ErrorCause,
	_ string,
	_ []metadata.Attribute,
) {
	m.errorActions = append(m.errorActions, action)
}

func (m *metadataSpy) RecordAdvisory(kind metadata.AdvisoryKind, _ string, _ []metadata.Attribute) {
	m.advisories = append(m.advisories, kind)
}

func (m *metadataSpy) RecordArtifact(kind metadata.ArtifactKind, _ string, _ []metadata.Attribute) {
	m.artifacts = append(m.artifacts, kind)
}

func (m *metadataSpy) RecordFinalBuildStats(
	totalDocuments int,
	totalNodes int,
	totalIssues int,
	totalErrors int,
	_ time.Duration,
) {
	m.statsCalls++
	m.documents = totalDocuments
	m.nodes = totalNodes
	m.issues = totalIssues
	m.errors = totalErrors
}

// failingStorage rejects every write with the given error.
type failingStorage struct {
	err   *storage.StorageError
	calls int
}

func (f *failingStorage) Write(
	_ string,
	_ storage.Document,
	_ hashutil.HashAlgo,
) (storage.WriteResult, failure.ClassifiedError) {
	f.calls++
	return storage.WriteResult{}, f.err
}

func writeManifest(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func buildConfig(t *testing.T, outputDir string, configure func(*config.Config)) config.Config {
	t.Helper()
	builder := config.WithDefault().
		WithOutputDir(outputDir).
		WithEnvironment(config.EnvDevelopment)
	if configure != nil {
		configure(builder)
	}
	cfg, err := builder.Build()
	require.NoError(t, err)
	return cfg
}
