package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rohmanhakim/jsonld-kit/internal/config"
	"github.com/rohmanhakim/jsonld-kit/pkg/hashutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/metadata"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	env       string
	logLevel  string
	outputDir string
	dryRun    bool
	pretty    bool
	mode      string
	hashAlgo  string
	scriptTag bool
)

// newRootCmd builds the command tree. Flags are rebound on every call so
// each execution starts from the flag defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsonld-kit",
		Short: "Build, validate and embed schema.org JSON-LD.",
		Long: `jsonld-kit assembles schema.org JSON-LD graphs from page manifests.

Identifiers are derived from canonicalized URLs so that the same entity
always gets the same @id. Documents are cleaned and validated before they
are written, and can be extracted from or injected into HTML pages.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path, JSON or YAML (e.g., ./jsonld-kit.yaml)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "environment: development or production")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newCanonicalizeCmd(),
		newIDCmd(),
		newBuildCmd(),
		newValidateCmd(),
		newExtractCmd(),
		newInjectCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI with os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// ExecuteArgs runs the CLI with explicit arguments and writers.
func ExecuteArgs(args []string, stdout io.Writer, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// InitConfigWithError builds the Config from the config file, when given,
// and applies the flags that differ from their zero value on top of it.
func InitConfigWithError() (config.Config, error) {
	var configBuilder *config.Config
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("error initializing config from file: %w", err)
		}
		configBuilder = &cfg
	} else {
		configBuilder = config.WithDefault()
	}

	if env != "" {
		configBuilder = configBuilder.WithEnvironment(config.Environment(env))
	}

	if logLevel != "" {
		configBuilder = configBuilder.WithLogLevel(logLevel)
	}

	if outputDir != "" {
		configBuilder = configBuilder.WithOutputDir(outputDir)
	}

	if dryRun {
		configBuilder = configBuilder.WithDryRun(dryRun)
	}

	if pretty {
		configBuilder = configBuilder.WithPretty(pretty)
	}

	if mode != "" {
		configBuilder = configBuilder.WithPrepareMode(jsonld.PrepareMode(mode))
	}

	if hashAlgo != "" {
		configBuilder = configBuilder.WithHashAlgo(hashutil.HashAlgo(hashAlgo))
	}

	if scriptTag {
		configBuilder = configBuilder.WithScriptTag(scriptTag)
	}

	return configBuilder.Build()
}

func newRecorder(cfg config.Config, stderr io.Writer) *metadata.Recorder {
	recorder := metadata.NewRecorderWithWriter("jsonld-kit", cfg.LogLevel(), stderr)
	return &recorder
}

func ResetFlags() {
	cfgFile = ""
	env = ""
	logLevel = ""
	outputDir = ""
	dryRun = false
	pretty = false
	mode = ""
	hashAlgo = ""
	scriptTag = false
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetEnvForTest(e string) {
	env = e
}

func SetLogLevelForTest(level string) {
	logLevel = level
}

func SetOutputDirForTest(dir string) {
	outputDir = dir
}

func SetDryRunForTest(dry bool) {
	dryRun = dry
}

func SetPrettyForTest(p bool) {
	pretty = p
}

func SetModeForTest(m string) {
	mode = m
}

func SetHashAlgoForTest(algo string) {
	hashAlgo = algo
}

func SetScriptTagForTest(tag bool) {
	scriptTag = tag
}
