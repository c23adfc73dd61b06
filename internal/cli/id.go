package cmd

import (
	"fmt"
	"strings"

	"github.com/rohmanhakim/jsonld-kit/pkg/nodeid"
	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
	"github.com/spf13/cobra"
)

var idKey string

func newIDCmd() *cobra.Command {
	names := make([]string, 0, len(nodeid.Kinds()))
	for _, k := range nodeid.Kinds() {
		names = append(names, string(k))
	}
	c := &cobra.Command{
		Use:   "id <kind> <url>",
		Short: "Derive the @id of an entity from its URL",
		Long:  "Derive the @id of an entity from its URL.\n\nKinds: " + strings.Join(names, ", "),
		Args:  cobra.ExactArgs(2),
		RunE:  runID,
	}
	c.Flags().StringVar(&idKey, "key", "", "disambiguating key for review, aggregate-rating, breadcrumb, itemlist and offer")
	return c
}

func runID(c *cobra.Command, args []string) error {
	cfg, err := InitConfigWithError()
	if err != nil {
		return err
	}
	recorder := newRecorder(cfg, c.ErrOrStderr())
	advisor := urlutil.NewAdvisor(cfg.Canonicalization(), nil, recorder, cfg.IsProduction())
	deriver := nodeid.NewDeriver(advisor)

	id, err := deriver.Derive(nodeid.Kind(args[0]), args[1], idKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), id)
	return nil
}
