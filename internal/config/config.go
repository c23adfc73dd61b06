package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rohmanhakim/jsonld-kit/pkg/fileutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/hashutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/jsonld"
	"github.com/rohmanhakim/jsonld-kit/pkg/retry"
	"github.com/rohmanhakim/jsonld-kit/pkg/timeutil"
	"github.com/rohmanhakim/jsonld-kit/pkg/urlutil"
	"gopkg.in/yaml.v3"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

type Config struct {
	//===============
	// Canonicalization
	//===============
	// Rules applied to every URL before an identifier is derived from it
	canonicalization urlutil.Options

	//===============
	// Validation
	//===============
	// The only accepted root @context
	allowContext string
	// Whether @id values must be absolute http(s) URLs
	validateIDs bool
	// Whether @type values must be non-empty strings or string sequences
	validateTypes bool

	//===============
	// Clean / Prepare
	//===============
	// Optional removals applied before validation
	clean jsonld.CleanOptions
	// How prepare reacts to validation issues: silent, warn or throw
	prepareMode jsonld.PrepareMode

	//===============
	// Serialization
	//===============
	// Indent output with two spaces
	pretty bool
	// Escape <, > and & so the payload is safe inside a script element
	escapeHTML bool

	//===============
	// Runtime
	//===============
	// development or production; production silences warnings
	environment Environment
	// Minimum level of the structured log output
	logLevel string

	//===============
	// Output
	//===============
	// Root directory in which to store the resulting graph documents
	outputDir string
	// Algorithm used to name output files
	hashAlgo hashutil.HashAlgo
	// Also write a <script> snippet next to every graph document
	scriptTag bool
	// Whether the program will simulate what it would do without
	// actually writing any file
	dryRun bool

	//===============
	// Write retry
	//===============
	// Upper bound of the random delay added to every backoff
	jitter time.Duration
	// Controls the random number generator
	randomSeed int64
	// maximum attempt per document when a write fails with a retryable error
	maxAttempt int
	// initial delay for backoff
	backoffInitialDuration time.Duration
	// multiplier during exponential backoff
	backoffMultiplier float64
	// capped maximum delay for backoff to stop exponential multiplication
	backoffMaxDuration time.Duration
}

// configDTO mirrors Config for file loading. Pointer fields distinguish an
// explicit false from an omitted key.
type configDTO struct {
	StripHash                *bool  `json:"stripHash,omitempty" yaml:"stripHash,omitempty"`
	StripKnownTrackingParams *bool  `json:"stripKnownTrackingParams,omitempty" yaml:"stripKnownTrackingParams,omitempty"`
	SortQueryParams          *bool  `json:"sortQueryParams,omitempty" yaml:"sortQueryParams,omitempty"`
	LowercaseHost            *bool  `json:"lowercaseHost,omitempty" yaml:"lowercaseHost,omitempty"`
	RemoveDefaultPort        *bool  `json:"removeDefaultPort,omitempty" yaml:"removeDefaultPort,omitempty"`
	RemoveTrailingSlash      *bool  `json:"removeTrailingSlash,omitempty" yaml:"removeTrailingSlash,omitempty"`
	AllowContext             string `json:"allowContext,omitempty" yaml:"allowContext,omitempty"`
	ValidateIDs              *bool  `json:"validateIds,omitempty" yaml:"validateIds,omitempty"`
	ValidateTypes            *bool  `json:"validateTypes,omitempty" yaml:"validateTypes,omitempty"`
	RemoveNull               bool   `json:"removeNull,omitempty" yaml:"removeNull,omitempty"`
	RemoveEmptyStrings       bool   `json:"removeEmptyStrings,omitempty" yaml:"removeEmptyStrings,omitempty"`
	RemoveEmptyArrays        bool   `json:"removeEmptyArrays,omitempty" yaml:"removeEmptyArrays,omitempty"`
	RemoveEmptyObjects       bool   `json:"removeEmptyObjects,omitempty" yaml:"removeEmptyObjects,omitempty"`
	PrepareMode              string `json:"prepareMode,omitempty" yaml:"prepareMode,omitempty"`
	Pretty                   bool   `json:"pretty,omitempty" yaml:"pretty,omitempty"`
	EscapeHTML               *bool  `json:"escapeHtml,omitempty" yaml:"escapeHtml,omitempty"`
	Environment              string `json:"environment,omitempty" yaml:"environment,omitempty"`
	LogLevel                 string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	OutputDir                string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
	HashAlgo                 string `json:"hashAlgo,omitempty" yaml:"hashAlgo,omitempty"`
	ScriptTag                bool   `json:"scriptTag,omitempty" yaml:"scriptTag,omitempty"`
	DryRun                   bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`

	Jitter                 time.Duration `json:"jitter,omitempty" yaml:"jitter,omitempty"`
	RandomSeed             int64         `json:"randomSeed,omitempty" yaml:"randomSeed,omitempty"`
	MaxAttempt             int           `json:"maxAttempt,omitempty" yaml:"maxAttempt,omitempty"`
	BackoffInitialDuration time.Duration `json:"backoffInitialDuration,omitempty" yaml:"backoffInitialDuration,omitempty"`
	BackoffMultiplier      float64       `json:"backoffMultiplier,omitempty" yaml:"backoffMultiplier,omitempty"`
	BackoffMaxDuration     time.Duration `json:"backoffMaxDuration,omitempty" yaml:"backoffMaxDuration,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	// Start with default config
	cfg := WithDefault()

	setBool(&cfg.canonicalization.StripHash, dto.StripHash)
	setBool(&cfg.canonicalization.StripKnownTrackingParams, dto.StripKnownTrackingParams)
	setBool(&cfg.canonicalization.SortQueryParams, dto.SortQueryParams)
	setBool(&cfg.canonicalization.LowercaseHost, dto.LowercaseHost)
	setBool(&cfg.canonicalization.RemoveDefaultPort, dto.RemoveDefaultPort)
	setBool(&cfg.canonicalization.RemoveTrailingSlash, dto.RemoveTrailingSlash)

	if dto.AllowContext != "" {
		cfg.allowContext = dto.AllowContext
	}
	setBool(&cfg.validateIDs, dto.ValidateIDs)
	setBool(&cfg.validateTypes, dto.ValidateTypes)

	cfg.clean = jsonld.CleanOptions{
		RemoveNull:         dto.RemoveNull,
		RemoveEmptyStrings: dto.RemoveEmptyStrings,
		RemoveEmptyArrays:  dto.RemoveEmptyArrays,
		RemoveEmptyObjects: dto.RemoveEmptyObjects,
	}
	if dto.PrepareMode != "" {
		cfg.prepareMode = jsonld.PrepareMode(dto.PrepareMode)
	}

	cfg.pretty = dto.Pretty
	setBool(&cfg.escapeHTML, dto.EscapeHTML)

	if dto.Environment != "" {
		cfg.environment = Environment(dto.Environment)
	}
	if dto.LogLevel != "" {
		cfg.logLevel = dto.LogLevel
	}
	if dto.OutputDir != "" {
		cfg.outputDir = dto.OutputDir
	}
	if dto.HashAlgo != "" {
		cfg.hashAlgo = hashutil.HashAlgo(dto.HashAlgo)
	}
	cfg.scriptTag = dto.ScriptTag
	cfg.dryRun = dto.DryRun

	if dto.Jitter != 0 {
		cfg.jitter = dto.Jitter
	}
	if dto.RandomSeed != 0 {
		cfg.randomSeed = dto.RandomSeed
	}
	if dto.MaxAttempt != 0 {
		cfg.maxAttempt = dto.MaxAttempt
	}
	if dto.BackoffInitialDuration != 0 {
		cfg.backoffInitialDuration = dto.BackoffInitialDuration
	}
	if dto.BackoffMultiplier != 0 {
		cfg.backoffMultiplier = dto.BackoffMultiplier
	}
	if dto.BackoffMaxDuration != 0 {
		cfg.backoffMaxDuration = dto.BackoffMaxDuration
	}

	return cfg.Build()
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// WithConfigFile loads a JSON config file, or YAML when the extension is
// .yaml or .yml. Omitted keys keep their defaults.
func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	if fileutil.IsYAML(path) {
		err = yaml.Unmarshal(configContent, &cfgDTO)
	} else {
		err = json.Unmarshal(configContent, &cfgDTO)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	return newConfigFromDTO(cfgDTO)
}

// WithDefault creates a new Config with default values for all fields.
// The environment defaults to production when JSONLD_KIT_ENV says so.
func WithDefault() *Config {
	environment := EnvDevelopment
	if urlutil.IsProduction() {
		environment = EnvProduction
	}
	defaultConfig := Config{
		canonicalization: urlutil.DefaultOptions(),
		allowContext:     jsonld.SchemaContext,
		validateIDs:      true,
		validateTypes:    true,
		clean:            jsonld.CleanOptions{},
		prepareMode:      jsonld.PrepareWarn,
		pretty:           false,
		escapeHTML:       true,
		environment:      environment,
		logLevel:         "info",
		outputDir:        "output",
		hashAlgo:         hashutil.HashAlgoSHA256,
		scriptTag:        false,
		dryRun:           false,
		// Write retry defaults
		jitter:                 50 * time.Millisecond,
		randomSeed:             time.Now().UnixNano(),
		maxAttempt:             3,
		backoffInitialDuration: 100 * time.Millisecond,
		backoffMultiplier:      2.0,
		backoffMaxDuration:     2 * time.Second,
	}
	return &defaultConfig
}

func (c *Config) WithCanonicalization(opts urlutil.Options) *Config {
	c.canonicalization = opts
	return c
}

func (c *Config) WithAllowContext(context string) *Config {
	c.allowContext = context
	return c
}

func (c *Config) WithValidateIDs(validate bool) *Config {
	c.validateIDs = validate
	return c
}

func (c *Config) WithValidateTypes(validate bool) *Config {
	c.validateTypes = validate
	return c
}

func (c *Config) WithClean(opts jsonld.CleanOptions) *Config {
	c.clean = opts
	return c
}

func (c *Config) WithPrepareMode(mode jsonld.PrepareMode) *Config {
	c.prepareMode = mode
	return c
}

func (c *Config) WithPretty(pretty bool) *Config {
	c.pretty = pretty
	return c
}

func (c *Config) WithEscapeHTML(escape bool) *Config {
	c.escapeHTML = escape
	return c
}

func (c *Config) WithEnvironment(env Environment) *Config {
	c.environment = env
	return c
}

func (c *Config) WithLogLevel(level string) *Config {
	c.logLevel = level
	return c
}

func (c *Config) WithOutputDir(outputDir string) *Config {
	c.outputDir = outputDir
	return c
}

func (c *Config) WithHashAlgo(algo hashutil.HashAlgo) *Config {
	c.hashAlgo = algo
	return c
}

func (c *Config) WithScriptTag(scriptTag bool) *Config {
	c.scriptTag = scriptTag
	return c
}

func (c *Config) WithDryRun(dryRun bool) *Config {
	c.dryRun = dryRun
	return c
}

func (c *Config) WithJitter(jitter time.Duration) *Config {
	c.jitter = jitter
	return c
}

func (c *Config) WithRandomSeed(seed int64) *Config {
	c.randomSeed = seed
	return c
}

func (c *Config) WithMaxAttempt(attempts int) *Config {
	c.maxAttempt = attempts
	return c
}

func (c *Config) WithBackoffInitialDuration(duration time.Duration) *Config {
	c.backoffInitialDuration = duration
	return c
}

func (c *Config) WithBackoffMultiplier(multiplier float64) *Config {
	c.backoffMultiplier = multiplier
	return c
}

func (c *Config) WithBackoffMaxDuration(duration time.Duration) *Config {
	c.backoffMaxDuration = duration
	return c
}

func (c *Config) Build() (Config, error) {
	mode, ok := jsonld.ParsePrepareMode(string(c.prepareMode))
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown prepareMode %q", ErrInvalidConfig, c.prepareMode)
	}
	c.prepareMode = mode

	switch c.environment {
	case EnvDevelopment, EnvProduction:
	default:
		return Config{}, fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.environment)
	}

	if _, err := hashutil.ParseHashAlgo(string(c.hashAlgo)); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	if c.outputDir == "" {
		return Config{}, fmt.Errorf("%w: outputDir cannot be empty", ErrInvalidConfig)
	}
	if c.allowContext == "" {
		return Config{}, fmt.Errorf("%w: allowContext cannot be empty", ErrInvalidConfig)
	}
	if c.maxAttempt < 1 {
		return Config{}, fmt.Errorf("%w: maxAttempt must be at least 1", ErrInvalidConfig)
	}
	if c.backoffMultiplier < 1 {
		return Config{}, fmt.Errorf("%w: backoffMultiplier must be at least 1", ErrInvalidConfig)
	}

	return *c, nil
}

func (c Config) Canonicalization() urlutil.Options {
	return c.canonicalization
}

func (c Config) ValidateOptions() jsonld.ValidateOptions {
	return jsonld.ValidateOptions{
		AllowContext:  c.allowContext,
		ValidateIDs:   c.validateIDs,
		ValidateTypes: c.validateTypes,
	}
}

func (c Config) Clean() jsonld.CleanOptions {
	return c.clean
}

func (c Config) PrepareMode() jsonld.PrepareMode {
	return c.prepareMode
}

func (c Config) StringifyOptions() jsonld.StringifyOptions {
	return jsonld.StringifyOptions{
		Pretty:        c.pretty,
		EscapeForHTML: c.escapeHTML,
	}
}

func (c Config) Environment() Environment {
	return c.environment
}

func (c Config) IsProduction() bool {
	return c.environment == EnvProduction
}

func (c Config) LogLevel() string {
	return c.logLevel
}

func (c Config) OutputDir() string {
	return c.outputDir
}

func (c Config) HashAlgo() hashutil.HashAlgo {
	return c.hashAlgo
}

func (c Config) ScriptTag() bool {
	return c.scriptTag
}

func (c Config) DryRun() bool {
	return c.dryRun
}

func (c Config) Jitter() time.Duration {
	return c.jitter
}

func (c Config) RandomSeed() int64 {
	return c.randomSeed
}

func (c Config) MaxAttempt() int {
	return c.maxAttempt
}

func (c Config) BackoffInitialDuration() time.Duration {
	return c.backoffInitialDuration
}

func (c Config) BackoffMultiplier() float64 {
	return c.backoffMultiplier
}

func (c Config) BackoffMaxDuration() time.Duration {
	return c.backoffMaxDuration
}

// WriteRetryParam bundles the write retry settings for retry.Retry.
func (c Config) WriteRetryParam() retry.RetryParam {
	return retry.NewRetryParam(
		c.jitter,
		c.randomSeed,
		c.maxAttempt,
		timeutil.NewBackoffParam(
			c.backoffInitialDuration,
			c.backoffMultiplier,
			c.backoffMaxDuration,
		),
	)
}
