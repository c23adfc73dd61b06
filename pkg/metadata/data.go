package metadata

import (
	"time"
)

/*
buildStats
  - Represents a terminal, derived summary of a completed batch build
  - Contains only aggregate counts and durations
  - Is computed by the pipeline after the last manifest was processed
  - Is recorded exactly once
  - Must not influence control flow
*/
type buildStats struct {
	totalDocuments int
	totalNodes     int
	totalIssues    int
	totalErrors    int
	durationMs     int64
}

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, reporting).

	Rules:
	 - ErrorCause MUST NOT influence control flow.
	 - ErrorCause values MUST have stable, package-agnostic semantics.
	 - Packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

Meaning:
  - The failure does not map cleanly to any known category.

# CauseInvalidInput

Meaning:
  - Caller-supplied data could not be interpreted.

Examples:
  - Unparseable URL handed to the canonicalizer
  - Manifest that does not match the manifest schema
  - Non-object passed where a JSON-LD node is required

# CauseContentInvalid

Meaning:
  - Content was read but could not be processed meaningfully.

Examples:
  - Malformed JSON inside an ld+json script block
  - Broken HTML preventing injection

# CauseStorageFailure

Meaning:
  - Failure while persisting build artifacts.

Examples:
  - Disk full
  - Write permission errors

# CauseInvariantViolation

Meaning:
  - A JSON-LD structural invariant was violated.

Examples:
  - Nested @context inside a graph member
  - Malformed @id or @type
*/
const (
	CauseUnknown ErrorCause = iota
	CauseInvalidInput
	CauseContentInvalid
	CauseStorageFailure
	CauseInvariantViolation
)

func (c ErrorCause) String() string {
	switch c {
	case CauseInvalidInput:
		return "invalid_input"
	case CauseContentInvalid:
		return "content_invalid"
	case CauseStorageFailure:
		return "storage_failure"
	case CauseInvariantViolation:
		return "invariant_violation"
	default:
		return "unknown"
	}
}

// AdvisoryKind classifies non-fatal diagnostics.
type AdvisoryKind string

const (
	// AdvisoryCanonicalization is emitted when a URL handed to an identifier
	// function was rewritten by the canonicalizer.
	AdvisoryCanonicalization AdvisoryKind = "canonicalization"
	// AdvisoryValidation is emitted by Prepare in warn mode.
	AdvisoryValidation AdvisoryKind = "validation"
)

type ArtifactKind string

const (
	ArtifactGraph     ArtifactKind = "graph"
	ArtifactScriptTag ArtifactKind = "script_tag"
	ArtifactHTML      ArtifactKind = "html"
)

type ErrorRecord struct {
	packageName string
	action      string
	cause       ErrorCause
	errorString string
	observedAt  time.Time
	attrs       []Attribute
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrTime      AttributeKey = "time"
	AttrURL       AttributeKey = "url"
	AttrInput     AttributeKey = "input"
	AttrOutput    AttributeKey = "output"
	AttrChanges   AttributeKey = "changes"
	AttrPath      AttributeKey = "path"
	AttrField     AttributeKey = "field"
	AttrIssues    AttributeKey = "issues"
	AttrManifest  AttributeKey = "manifest"
	AttrWritePath AttributeKey = "write_path"
)
