package cmd

import (
	"fmt"

	"github.com/rohmanhakim/jsonld-kit/internal/extractor"
	"github.com/rohmanhakim/jsonld-kit/pkg/fileutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <html-file>",
		Short: "Print the ld+json blocks embedded in an HTML page",
		Long: `Print every application/ld+json block of an HTML page as indented JSON,
one block after another in document order. Malformed blocks are logged
and make the command fail after the well-formed ones were printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}
}

func runExtract(c *cobra.Command, args []string) error {
	cfg, err := InitConfigWithError()
	if err != nil {
		return err
	}
	recorder := newRecorder(cfg, c.ErrOrStderr())
	ext := extractor.NewDomExtractor(recorder)

	data, readErr := fileutil.ReadFile(args[0])
	if readErr != nil {
		return readErr
	}
	result, extractErr := ext.Extract(args[0], data)
	if extractErr != nil {
		return extractErr
	}

	out := c.OutOrStdout()
	for _, value := range result.Values() {
		text, err := jsonld.ToString(value, jsonld.StringifyOptions{Pretty: true, EscapeForHTML: false})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}
	if failed := result.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d malformed ld+json block(s)", len(failed))
	}
	return nil
}
