package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rohmanhakim/jsonld-kit/internal/pipeline"
	"github.com/rohmanhakim/jsonld-kit/internal/report"
	"github.com/rohmanhakim/jsonld-kit/internal/storage"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "build <manifest>...",
		Short: "Build JSON-LD documents from page manifests",
		Long: `Build one JSON-LD graph document per manifest (JSON or YAML).

Each document is cleaned and validated, then written to
<output-dir>/<hash>.jsonld where <hash> is derived from the page's
canonical URL. With --dry-run nothing is written and the documents
are printed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBuild,
	}
	c.Flags().StringVar(&outputDir, "output-dir", "", "output directory (default \"output\")")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "build and validate without writing")
	c.Flags().BoolVar(&pretty, "pretty", false, "indent the written JSON")
	c.Flags().StringVar(&mode, "mode", "", "prepare mode: silent, warn or throw (default \"warn\")")
	c.Flags().StringVar(&hashAlgo, "hash-algo", "", "filename hash: sha256 or blake3 (default \"sha256\")")
	c.Flags().BoolVar(&scriptTag, "script-tag", false, "also write a <script> snippet next to each document")
	return c
}

func runBuild(c *cobra.Command, args []string) error {
	cfg, err := InitConfigWithError()
	if err != nil {
		return err
	}
	recorder := newRecorder(cfg, c.ErrOrStderr())
	localSink := storage.NewLocalSink(recorder)
	p := pipeline.NewPipelineWithDeps(cfg, recorder, recorder, &localSink)

	summary, runErr := p.Run(args)

	out := c.OutOrStdout()
	if cfg.DryRun() {
		for _, d := range summary.Documents {
			if d.Output != "" {
				fmt.Fprintln(out, d.Output)
			}
		}
	}
	if err := writeSummary(out, summary); err != nil {
		return err
	}
	return runErr
}

func writeSummary(out io.Writer, summary pipeline.Summary) error {
	rows := make([][]string, 0, len(summary.Documents))
	var issueRows [][]string
	for _, d := range summary.Documents {
		status := "ok"
		target := "-"
		switch {
		case d.Failed():
			status = "failed"
		case d.Write != nil:
			target = d.Write.Path()
		}
		rows = append(rows, []string{
			d.Source,
			status,
			strconv.Itoa(d.Nodes),
			strconv.Itoa(len(d.Issues)),
			target,
		})
		issueRows = append(issueRows, report.IssueRows(d.Source, d.Issues)...)
	}

	if _, err := io.WriteString(out, report.Table(
		[]string{"MANIFEST", "STATUS", "NODES", "ISSUES", "OUTPUT"},
		rows,
	)); err != nil {
		return err
	}
	if len(issueRows) > 0 {
		fmt.Fprintln(out)
		if err := report.WriteIssues(out, issueRows); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "\n%d document(s), %d written, %d node(s), %d issue(s), %d error(s) in %s\n",
		len(summary.Documents),
		summary.Written,
		summary.TotalNodes,
		summary.TotalIssues,
		summary.TotalErrors,
		summary.Duration.Round(time.Millisecond),
	)
	return err
}
