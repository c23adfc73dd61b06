package cmd

import (
	"fmt"
	"strings"

	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
	"github.com/spf13/cobra"
)

var (
	keepHash            bool
	keepTracking        bool
	noSort              bool
	keepHostCase        bool
	keepDefaultPort     bool
	removeTrailingSlash bool
	explain             bool
)

func newCanonicalizeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "canonicalize <url>...",
		Short: "Print the canonical form of each URL",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCanonicalize,
	}
	c.Flags().BoolVar(&keepHash, "keep-hash", false, "keep the fragment")
	c.Flags().BoolVar(&keepTracking, "keep-tracking", false, "keep known tracking parameters")
	c.Flags().BoolVar(&noSort, "no-sort", false, "keep query parameter order")
	c.Flags().BoolVar(&keepHostCase, "keep-host-case", false, "do not lowercase the host")
	c.Flags().BoolVar(&keepDefaultPort, "keep-default-port", false, "keep :80 and :443")
	c.Flags().BoolVar(&removeTrailingSlash, "remove-trailing-slash", false, "strip trailing slashes from non-root paths")
	c.Flags().BoolVar(&explain, "explain", false, "print the applied rules next to each URL")
	return c
}

func runCanonicalize(c *cobra.Command, args []string) error {
	cfg, err := InitConfigWithError()
	if err != nil {
		return err
	}
	opts := canonicalizeOptions(cfg.Canonicalization())

	out := c.OutOrStdout()
	for _, raw := range args {
		result, err := urlutil.Canonicalize(raw, opts)
		if err != nil {
			return err
		}
		if !explain {
			fmt.Fprintln(out, result.URL)
			continue
		}
		rules := make([]string, len(result.Changes))
		for i, r := range result.Changes {
			rules[i] = string(r)
		}
		if len(rules) == 0 {
			rules = append(rules, "unchanged")
		}
		fmt.Fprintf(out, "%s -> %s (%s)\n", raw, result.URL, strings.Join(rules, ", "))
	}
	return nil
}

// canonicalizeOptions applies the rule flags on top of the configured policy.
func canonicalizeOptions(base urlutil.Options) urlutil.Options {
	opts := base
	if keepHash {
		opts.StripHash = false
	}
	if keepTracking {
		opts.StripKnownTrackingParams = false
	}
	if noSort {
		opts.SortQueryParams = false
	}
	if keepHostCase {
		opts.LowercaseHost = false
	}
	if keepDefaultPort {
		opts.RemoveDefaultPort = false
	}
	if removeTrailingSlash {
		opts.RemoveTrailingSlash = true
	}
	return opts
}
