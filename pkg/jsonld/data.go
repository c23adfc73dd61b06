package jsonld

import "github.com/rohmanhakim/jsonld-kit/pkg/metadata"

// SchemaContext is the only @context this package emits or accepts by default.
const SchemaContext = "https://schema.org"

// Node is an open JSON-LD object.
//
// Values may be strings, numbers (including json.Number), bools, nested
// nodes, sequences, or nil. An untyped nil is JSON null; a typed nil
// container or pointer (Node(nil), []any(nil), (*int)(nil)) is absent and is
// dropped by Clean and the serializer.
type Node map[string]any

// Graph is a schema.org graph document.
type Graph struct {
	Context string `json:"@context"`
	Graph   []Node `json:"@graph"`
}

// Node converts the document to a Node for validation and serialization.
func (g Graph) Node() Node {
	members := make([]any, len(g.Graph))
	for i, n := range g.Graph {
		members[i] = n
	}
	return Node{
		"@context": g.Context,
		"@graph":   members,
	}
}

type IssueCode string

const (
	IssueInvalidRoot    IssueCode = "invalid_root"
	IssueInvalidContext IssueCode = "invalid_context"
	IssueMissingGraph   IssueCode = "missing_graph"
	IssueInvalidGraph   IssueCode = "invalid_graph"
	IssueNestedContext  IssueCode = "nested_context"
	IssueInvalidID      IssueCode = "invalid_id"
	IssueInvalidType    IssueCode = "invalid_type"
)

// Issue is a single structural finding. Path uses "$" for the root, ".key"
// for object members and "[i]" for sequence elements.
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
	Path    string    `json:"path"`
}

type ValidateOptions struct {
	// AllowContext is the only accepted root @context. Empty means SchemaContext.
	AllowContext string
	// ValidateIDs checks that @id is an absolute http(s) URL.
	ValidateIDs bool
	// ValidateTypes checks that @type is a non-empty string or string sequence.
	ValidateTypes bool
}

func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{
		AllowContext:  SchemaContext,
		ValidateIDs:   true,
		ValidateTypes: true,
	}
}

// CleanOptions selects what Clean removes besides absent values.
// The zero value removes absent values only.
type CleanOptions struct {
	RemoveNull         bool
	RemoveEmptyStrings bool
	RemoveEmptyArrays  bool
	RemoveEmptyObjects bool
}

// CleanAll enables every optional removal.
func CleanAll() CleanOptions {
	return CleanOptions{
		RemoveNull:         true,
		RemoveEmptyStrings: true,
		RemoveEmptyArrays:  true,
		RemoveEmptyObjects: true,
	}
}

type PrepareMode string

const (
	PrepareSilent PrepareMode = "silent"
	PrepareWarn   PrepareMode = "warn"
	PrepareThrow  PrepareMode = "throw"
)

// ParsePrepareMode validates a textual mode. Empty defaults to warn.
func ParsePrepareMode(mode string) (PrepareMode, bool) {
	switch PrepareMode(mode) {
	case "":
		return PrepareWarn, true
	case PrepareSilent, PrepareWarn, PrepareThrow:
		return PrepareMode(mode), true
	default:
		return "", false
	}
}

type PrepareOptions struct {
	// Mode defaults to warn when empty.
	Mode  PrepareMode
	Clean CleanOptions
	// Validate defaults to DefaultValidateOptions when nil.
	Validate *ValidateOptions
	// Sink receives the warn-mode advisory. Nil logs to stderr.
	Sink metadata.Sink
	// Production silences warn mode.
	Production bool
}

type StringifyOptions struct {
	// Pretty indents with two spaces.
	Pretty bool
	// EscapeForHTML escapes <, > and & as unicode escapes.
	EscapeForHTML bool
}

func DefaultStringifyOptions() StringifyOptions {
	return StringifyOptions{
		Pretty:        false,
		EscapeForHTML: true,
	}
}

type ScriptTagOptions struct {
	ID    string
	Nonce string
}
