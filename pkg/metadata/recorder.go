package metadata

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

/*
Metadata Collected
- Canonicalization advisories
- Validation warnings
- Artifact writes
- Error classifications

Logging Goals
- Debuggable builds
- Post-run auditability
- Failure diagnostics

Metadata is write-only.
No component may read metadata to influence control flow.
*/

/*
Recorder captures structured events and forwards them to a slog handler.
It must not:
- perform I/O decisions
- affect control flow
Ordering guarantees:
- Events are recorded synchronously in the order they are received.
- Ordering is provided for debuggability, not causality.
*/
type Recorder struct {
	logger *slog.Logger
	source string
}

// NewRecorder creates a Recorder writing text records to stderr at the given level.
func NewRecorder(source string, level string) Recorder {
	return NewRecorderWithWriter(source, level, os.Stderr)
}

// NewRecorderWithWriter is NewRecorder with an explicit destination.
func NewRecorderWithWriter(source string, level string, w io.Writer) Recorder {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	return Recorder{
		logger: slog.New(slog.NewTextHandler(w, opts)),
		source: source,
	}
}

// ParseLevel maps a textual level to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
	record := ErrorRecord{
		packageName: packageName,
		action:      action,
		cause:       cause,
		errorString: errorString,
		observedAt:  observedAt,
		attrs:       attrs,
	}
	r.logger.Error(record.errorString, record.args(r.source)...)
}

func (r *Recorder) RecordAdvisory(kind AdvisoryKind, message string, attrs []Attribute) {
	args := []any{
		slog.String("source", r.source),
		slog.String("kind", string(kind)),
	}
	r.logger.Warn(message, append(args, attrArgs(attrs)...)...)
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	args := []any{
		slog.String("source", r.source),
		slog.String("artifact", string(kind)),
		slog.String(string(AttrPath), path),
	}
	r.logger.Info("artifact written", append(args, attrArgs(attrs)...)...)
}

/*
RecordFinalBuildStats records a terminal, derived summary of a completed batch.

Contract:
  - MUST be called exactly once per batch execution.
  - MUST be called only after the last manifest was processed.
  - Recorded stats MUST NOT influence control flow.
*/
func (r *Recorder) RecordFinalBuildStats(
	totalDocuments int,
	totalNodes int,
	totalIssues int,
	totalErrors int,
	duration time.Duration,
) {
	stats := buildStats{
		totalDocuments: totalDocuments,
		totalNodes:     totalNodes,
		totalIssues:    totalIssues,
		totalErrors:    totalErrors,
		durationMs:     duration.Milliseconds(),
	}

	r.append(stats)
}

func (r *Recorder) append(stats buildStats) {
	r.logger.Info("build finished",
		slog.String("source", r.source),
		slog.Int("documents", stats.totalDocuments),
		slog.Int("nodes", stats.totalNodes),
		slog.Int("issues", stats.totalIssues),
		slog.Int("errors", stats.totalErrors),
		slog.Int64("duration_ms", stats.durationMs),
	)
}

func (e ErrorRecord) args(source string) []any {
	args := []any{
		slog.String("source", source),
		slog.String("package", e.packageName),
		slog.String("action", e.action),
		slog.String("cause", e.cause.String()),
		slog.Time(string(AttrTime), e.observedAt),
	}
	return append(args, attrArgs(e.attrs)...)
}

func attrArgs(attrs []Attribute) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, slog.String(string(attr.Key), attr.Value))
	}
	return args
}

type Sink interface {
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)
	RecordAdvisory(kind AdvisoryKind, message string, attrs []Attribute)
	RecordArtifact(kind ArtifactKind, path string, attrs []Attribute)
}

type BuildFinalizer interface {
	RecordFinalBuildStats(
		totalDocuments int,
		totalNodes int,
		totalIssues int,
		totalErrors int,
		duration time.Duration,
	)
}

// NoopSink, struct that implements metadata.Sink but does nothing
// Pipeline (or Test) can decide whether to inject Recorder or NoopSink
// Purpose is to make metadata orthogonal

type NoopSink struct{}

func (n *NoopSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	errorString string,
	attrs []Attribute,
) {
}

func (n *NoopSink) RecordAdvisory(kind AdvisoryKind, message string, attrs []Attribute) {}

func (n *NoopSink) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {}

func (n *NoopSink) RecordFinalBuildStats(
	totalDocuments int,
	totalNodes int,
	totalIssues int,
	totalErrors int,
	duration time.Duration,
) {
}
