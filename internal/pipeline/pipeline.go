package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/rohmanhakim/jsonld-kit/internal/config"
	"github.com/rohmanhakim/jsonld-kit/internal/content"
	"github.com/rohmanhakim/jsonld-kit/internal/manifest"
	"github.com/rohmanhakim/jsonld-kit/internal/storage"
	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
	"github.com/rohmanhakim/jsonld-kit/pkg/retry"
	"github.com/rohmanhakim/jsonld-kit/pkg/schemaorg"
	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
)

/*
 Pipeline is the sole control-plane authority of a batch build.

 - Manifests are processed sequentially in the order given.
 - Stages (manifest, jsonld, storage) detect and classify failures;
   only the pipeline decides whether the batch continues.
 - A failed manifest never stops its successors. Only a fatal storage
   failure aborts the remaining manifests.
 - Recoverable storage failures are retried per document with
   exponential backoff before the document counts as failed.
 - In throw mode, documents with issues are not written and the batch
   fails after the last manifest was processed.

 Metadata emission is observational only and MUST NOT influence
 control flow.
*/

const scriptTagID = "jsonld"

type Pipeline struct {
	cfg            config.Config
	metadataSink   metadata.Sink
	buildFinalizer metadata.BuildFinalizer
	advisor        *urlutil.Advisor
	builder        *manifest.Builder
	storageSink    storage.Sink
}

// NewPipelineWithDeps wires the build stages around the given sinks.
func NewPipelineWithDeps(
	cfg config.Config,
	buildFinalizer metadata.BuildFinalizer,
	metadataSink metadata.Sink,
	storageSink storage.Sink,
) Pipeline {
	advisor := urlutil.NewAdvisor(cfg.Canonicalization(), nil, metadataSink, cfg.IsProduction())
	mapper := schemaorg.NewMapper(nodeid.NewDeriver(advisor))
	converter := content.NewConverter(metadataSink)
	return Pipeline{
		cfg:            cfg,
		metadataSink:   metadataSink,
		buildFinalizer: buildFinalizer,
		advisor:        advisor,
		builder:        manifest.NewBuilder(mapper, converter, metadataSink),
		storageSink:    storageSink,
	}
}

// Run builds every manifest and returns the summary together with the
// batch error, if any. The summary is complete even when an error is returned.
func (p *Pipeline) Run(paths []string) (Summary, error) {
	start := time.Now()
	summary := Summary{Documents: make([]DocumentResult, 0, len(paths))}

	var batchErr error
	for i, path := range paths {
		result := p.process(path)
		summary.Documents = append(summary.Documents, result)
		summary.TotalNodes += result.Nodes
		summary.TotalIssues += len(result.Issues)
		if result.Write != nil {
			summary.Written++
		}
		if result.Err == nil {
			continue
		}
		summary.TotalErrors++

		var storageErr *storage.StorageError
		if errors.As(result.Err, &storageErr) && failure.IsFatal(storageErr) {
			batchErr = &PipelineError{
				Message:   fmt.Sprintf("%s; %d manifest(s) not processed", storageErr.Error(), len(paths)-i-1),
				Retryable: false,
				Cause:     ErrCauseAborted,
			}
			break
		}
	}
	summary.Duration = time.Since(start)

	p.buildFinalizer.RecordFinalBuildStats(
		len(summary.Documents),
		summary.TotalNodes,
		summary.TotalIssues,
		summary.TotalErrors,
		summary.Duration,
	)

	if batchErr != nil {
		return summary, batchErr
	}
	return summary, p.batchError(summary)
}

func (p *Pipeline) batchError(summary Summary) error {
	if summary.TotalErrors == 0 {
		return nil
	}
	validationFailures := 0
	for _, d := range summary.Documents {
		var validationErr *jsonld.ValidationError
		if errors.As(d.Err, &validationErr) {
			validationFailures++
		}
	}
	if validationFailures == summary.TotalErrors {
		return &PipelineError{
			Message:   fmt.Sprintf("%d document(s) with %d issue(s)", validationFailures, summary.TotalIssues),
			Retryable: false,
			Cause:     ErrCauseValidationFailed,
		}
	}
	return &PipelineError{
		Message:   fmt.Sprintf("%d of %d document(s) failed", summary.TotalErrors, len(summary.Documents)),
		Retryable: false,
		Cause:     ErrCauseDocumentsFailed,
	}
}

func (p *Pipeline) process(path string) DocumentResult {
	result := DocumentResult{Source: path}

	m, err := manifest.Load(path)
	if err != nil {
		result.Err = err
		p.recordError(path, "manifest.Load", err)
		return result
	}

	canonical, err := p.advisor.CanonicalizeString(m.URL)
	if err != nil {
		result.Err = &PipelineError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseCanonicalURL,
		}
		p.recordError(path, "Pipeline.canonicalURL", result.Err)
		return result
	}
	result.CanonicalURL = canonical

	// builder records its own failures
	graph, err := p.builder.Graph(m)
	if err != nil {
		result.Err = err
		return result
	}
	result.Nodes = len(graph.Graph)

	validateOpts := p.cfg.ValidateOptions()
	prepared, err := jsonld.Prepare(graph.Node(), jsonld.PrepareOptions{
		Mode:       p.cfg.PrepareMode(),
		Clean:      p.cfg.Clean(),
		Validate:   &validateOpts,
		Sink:       p.metadataSink,
		Production: p.cfg.IsProduction(),
	})
	if err != nil {
		var validationErr *jsonld.ValidationError
		if errors.As(err, &validationErr) {
			result.Issues = validationErr.Issues
		}
		result.Err = err
		p.recordError(path, "jsonld.Prepare", err)
		return result
	}
	result.Issues = jsonld.Validate(prepared, validateOpts)

	output, err := jsonld.ToString(prepared, p.cfg.StringifyOptions())
	if err != nil {
		result.Err = &PipelineError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseSerialize,
		}
		p.recordError(path, "jsonld.ToString", result.Err)
		return result
	}
	result.Output = output

	if p.cfg.DryRun() {
		return result
	}

	doc := storage.Document{
		CanonicalURL: canonical,
		SourceURL:    m.URL,
		JSON:         []byte(output + "\n"),
	}
	if p.cfg.ScriptTag() {
		tag, err := jsonld.ToScriptTag(prepared, jsonld.ScriptTagOptions{ID: scriptTagID})
		if err != nil {
			result.Err = &PipelineError{
				Message:   err.Error(),
				Retryable: false,
				Cause:     ErrCauseSerialize,
			}
			p.recordError(path, "jsonld.ToScriptTag", result.Err)
			return result
		}
		doc.ScriptTag = []byte(tag + "\n")
	}

	// storage records its own failures; recoverable ones are retried with backoff
	writeResult, writeErr := retry.Retry(p.cfg.WriteRetryParam(), func() (storage.WriteResult, failure.ClassifiedError) {
		return p.storageSink.Write(p.cfg.OutputDir(), doc, p.cfg.HashAlgo())
	})
	if writeErr != nil {
		result.Err = writeErr
		return result
	}
	result.Write = &writeResult
	return result
}

func (p *Pipeline) recordError(path string, action string, err error) {
	cause := metadata.CauseUnknown
	var pipelineErr *PipelineError
	var validationErr *jsonld.ValidationError
	switch {
	case errors.As(err, &pipelineErr):
		cause = mapPipelineErrorToMetadataCause(pipelineErr)
	case errors.As(err, &validationErr):
		cause = metadata.CauseInvariantViolation
	default:
		var manifestErr *manifest.ManifestError
		if errors.As(err, &manifestErr) {
			cause = metadata.CauseInvalidInput
		}
	}
	p.metadataSink.RecordError(
		time.Now(),
		"pipeline",
		action,
		cause,
		err.Error(),
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrManifest, path),
		},
	)
}
