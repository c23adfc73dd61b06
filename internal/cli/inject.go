package cmd

import (
	"github.com/rohmanhakim/jsonld-kit/internal/inject"
	"github.com/rohmanhakim/jsonld-kit/pkg/fileutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"github.com/spf13/cobra"
)

var (
	injectID    string
	injectNonce string
	injectOut   string
)

func newInjectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "inject <html-file> <jsonld-file>",
		Short: "Embed a JSON-LD document into an HTML page",
		Long: `Embed a JSON-LD document into an HTML page as an application/ld+json
script. A script with the same id is replaced in place; otherwise the
script is appended to <head>. The page is written to stdout unless
--out is given.`,
		Args: cobra.ExactArgs(2),
		RunE: runInject,
	}
	c.Flags().StringVar(&injectID, "id", "jsonld", "id attribute of the script element")
	c.Flags().StringVar(&injectNonce, "nonce", "", "CSP nonce attribute")
	c.Flags().StringVarP(&injectOut, "out", "o", "", "write the page to this path instead of stdout")
	return c
}

func runInject(c *cobra.Command, args []string) error {
	cfg, err := InitConfigWithError()
	if err != nil {
		return err
	}
	recorder := newRecorder(cfg, c.ErrOrStderr())
	injector := inject.NewInjector(recorder)

	page, readErr := fileutil.ReadFile(args[0])
	if readErr != nil {
		return readErr
	}
	raw, readErr := fileutil.ReadFile(args[1])
	if readErr != nil {
		return readErr
	}
	value, err := decodeJSON(raw)
	if err != nil {
		return err
	}

	result, injectErr := injector.Inject(args[0], page, value, jsonld.ScriptTagOptions{
		ID:    injectID,
		Nonce: injectNonce,
	})
	if injectErr != nil {
		return injectErr
	}

	if injectOut == "" {
		_, err := c.OutOrStdout().Write(result.HTML)
		return err
	}
	if writeErr := fileutil.WriteFileAtomic(injectOut, result.HTML); writeErr != nil {
		return writeErr
	}
	recorder.RecordArtifact(
		metadata.ArtifactHTML,
		injectOut,
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrInput, args[0]),
		},
	)
	return nil
}
