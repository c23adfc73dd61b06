package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rohmanhakim/jsonld-kit/internal/extractor"
	"github.com/rohmanhakim/jsonld-kit/internal/report"
	"github.com/rohmanhakim/jsonld-kit/pkg/fileutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/spf13/cobra"
)

var validateClean bool

func newValidateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate JSON-LD documents or the ld+json blocks of HTML pages",
		Long: `Validate JSON-LD documents.

Files ending in .html or .htm are scanned for application/ld+json
script blocks and every block is validated on its own. Any other file
is read as a single JSON document. The command fails when at least one
issue or malformed block is found.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	c.Flags().BoolVar(&validateClean, "clean", false, "clean each document with the configured options before validating")
	return c
}

func runValidate(c *cobra.Command, args []string) error {
	cfg, err := InitConfigWithError()
	if err != nil {
		return err
	}
	recorder := newRecorder(cfg, c.ErrOrStderr())
	ext := extractor.NewDomExtractor(recorder)
	opts := cfg.ValidateOptions()

	var rows [][]string
	failures := 0
	for _, path := range args {
		data, readErr := fileutil.ReadFile(path)
		if readErr != nil {
			return readErr
		}

		docs := map[string]any{}
		var order []string
		if fileutil.IsHTML(path) {
			result, extractErr := ext.Extract(path, data)
			if extractErr != nil {
				return extractErr
			}
			for _, block := range result.Blocks {
				source := fmt.Sprintf("%s#%d", path, block.Index)
				if block.Err != nil {
					failures++
					rows = append(rows, []string{source, string(block.Err.Cause), "$", block.Err.Message})
					continue
				}
				docs[source] = block.Value
				order = append(order, source)
			}
		} else {
			value, decodeErr := decodeJSON(data)
			if decodeErr != nil {
				return fmt.Errorf("%s: %w", path, decodeErr)
			}
			docs[path] = value
			order = append(order, path)
		}

		for _, source := range order {
			value := docs[source]
			if validateClean {
				value = jsonld.Clean(value, cfg.Clean())
			}
			issues := jsonld.Validate(value, opts)
			failures += len(issues)
			rows = append(rows, report.IssueRows(source, issues)...)
		}
	}

	if err := report.WriteIssues(c.OutOrStdout(), rows); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%d issue(s) found", failures)
	}
	return nil
}

// decodeJSON reads exactly one JSON value, keeping numbers as json.Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the first JSON value")
	}
	return value, nil
}
