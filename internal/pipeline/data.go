package pipeline

import (
	"time"

	"github.com/rohmanhakim/jsonld-kit/internal/storage"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
)

// DocumentResult is the outcome of one manifest.
type DocumentResult struct {
	Source       string
	CanonicalURL string
	// Nodes counts the graph members after dedup.
	Nodes  int
	Issues []jsonld.Issue
	// Output is the serialized document; empty when the document failed.
	Output string
	// Write is nil for dry runs and failed documents.
	Write *storage.WriteResult
	Err   error
}

func (d DocumentResult) Failed() bool {
	return d.Err != nil
}

// Summary aggregates a batch. Documents keep the input order.
type Summary struct {
	Documents   []DocumentResult
	TotalNodes  int
	TotalIssues int
	TotalErrors int
	Written     int
	Duration    time.Duration
}
