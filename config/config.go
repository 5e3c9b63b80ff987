// Package config loads graspologic settings for the command line tool.
//
// Configuration can be loaded from:
//   - Environment variables
//   - YAML configuration file
//   - Programmatic defaults
//
// Environment Variables:
//
//	GRASPOLOGIC_COMPONENTS             - Embedding dimension, 0 = automatic (default: 0)
//	GRASPOLOGIC_ELBOWS                 - Elbows for automatic dimension (default: 2)
//	GRASPOLOGIC_ALGORITHM              - randomized | full | truncated (default: randomized)
//	GRASPOLOGIC_ITERATIONS             - Randomized power iterations (default: 5)
//	GRASPOLOGIC_CHECK_LCC              - Connectivity checks (default: true)
//	GRASPOLOGIC_IN_SAMPLE_PROPORTION   - Fraction of vertices in sample (default: 1)
//	GRASPOLOGIC_IN_SAMPLE_VERTICES     - Comma-separated explicit in-sample labels
//	GRASPOLOGIC_CONNECTED_ATTEMPTS     - Sampler retry budget (default: 100)
//	GRASPOLOGIC_SEMI_SUPERVISED        - Grow the reference on Predict (default: false)
//	GRASPOLOGIC_SEED                   - Model seed, 0 = fixed default (default: 0)
//	GRASPOLOGIC_ZERO_ROW_TOLERANCE     - Zero similarity threshold (default: 1e-12)
//	GRASPOLOGIC_COMMITTED_LIMIT        - Max grown rows, 0 = unbounded (default: 0)
//	GRASPOLOGIC_DIAGONAL_AUGMENTATION  - Degree-based diagonal (default: false)
//	GRASPOLOGIC_STORE_DIR              - Model store directory (default: ./graspologic-data)
//	GRASPOLOGIC_STORE_IN_MEMORY        - Keep the store in memory (default: false)
//	GRASPOLOGIC_WORKERS                - Concurrent fits in fit-predict (default: 4)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/plan-systems/klog"
	"gopkg.in/yaml.v3"

	"github.com/PerifanosPrometheus/graspologic/embed"
	"github.com/PerifanosPrometheus/graspologic/reduce"
)

// EnvPrefix prefixes every environment variable read by LoadFromEnvOrFile.
const EnvPrefix = "GRASPOLOGIC_"

// Defaults not owned by the embed package.
const (
	DefaultStoreDir = "./graspologic-data"
	DefaultWorkers  = 4
)

// ErrInvalidConfig indicates a configuration that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete tool configuration.
//
// Example:
//
//	cfg, err := config.LoadFromEnvOrFile("./graspologic.yaml")
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//	model, err := embed.New(cfg.EmbedOptions()...)
type Config struct {
	Embed   EmbedConfig `yaml:"embed"`
	Store   StoreConfig `yaml:"store"`
	Workers int         `yaml:"workers"`
}

// EmbedConfig mirrors the embed.Option set.
type EmbedConfig struct {
	Components           int              `yaml:"components"`
	Elbows               int              `yaml:"elbows"`
	Algorithm            reduce.Algorithm `yaml:"algorithm"`
	Iterations           int              `yaml:"iterations"`
	CheckLCC             bool             `yaml:"check_lcc"`
	InSampleProportion   float64          `yaml:"in_sample_proportion"`
	InSampleIndices      []int            `yaml:"in_sample_indices,omitempty"`
	InSampleVertices     []string         `yaml:"in_sample_vertices,omitempty"`
	ConnectedAttempts    int              `yaml:"connected_attempts"`
	SemiSupervised       bool             `yaml:"semi_supervised"`
	Seed                 int64            `yaml:"seed"`
	ZeroRowTolerance     float64          `yaml:"zero_row_tolerance"`
	CommittedLimit       int              `yaml:"committed_limit"`
	DiagonalAugmentation bool             `yaml:"diagonal_augmentation"`
}

// StoreConfig locates the model store.
type StoreConfig struct {
	Dir      string `yaml:"dir"`
	InMemory bool   `yaml:"in_memory"`
}

// DefaultConfig returns the configuration matching a model built with no options.
func DefaultConfig() *Config {
	return &Config{
		Embed: EmbedConfig{
			Elbows:             reduce.DefaultElbows,
			Algorithm:          reduce.DefaultAlgorithm,
			Iterations:         reduce.DefaultIterations,
			CheckLCC:           true,
			InSampleProportion: embed.DefaultInSampleProportion,
			ConnectedAttempts:  embed.DefaultConnectedAttempts,
			ZeroRowTolerance:   embed.DefaultZeroRowTolerance,
		},
		Store:   StoreConfig{Dir: DefaultStoreDir},
		Workers: DefaultWorkers,
	}
}

// LoadConfig loads configuration from a YAML file. Keys absent from the
// file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("LoadConfig: %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnvOrFile loads the file at filePath (defaults when empty), then
// applies environment overrides. Environment variables take precedence
// over file settings.
func LoadFromEnvOrFile(filePath string) (*Config, error) {
	cfg := DefaultConfig()
	if filePath != "" {
		var err error
		if cfg, err = LoadConfig(filePath); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)

	return cfg, nil
}

// applyEnv overrides cfg from GRASPOLOGIC_* variables. Unparsable values
// are logged and ignored.
func applyEnv(cfg *Config) {
	e := &cfg.Embed
	envInt("COMPONENTS", &e.Components)
	envInt("ELBOWS", &e.Elbows)
	envInt("ITERATIONS", &e.Iterations)
	envInt("CONNECTED_ATTEMPTS", &e.ConnectedAttempts)
	envInt("COMMITTED_LIMIT", &e.CommittedLimit)
	envInt("WORKERS", &cfg.Workers)
	envBool("CHECK_LCC", &e.CheckLCC)
	envBool("SEMI_SUPERVISED", &e.SemiSupervised)
	envBool("DIAGONAL_AUGMENTATION", &e.DiagonalAugmentation)
	envBool("STORE_IN_MEMORY", &cfg.Store.InMemory)
	envFloat("IN_SAMPLE_PROPORTION", &e.InSampleProportion)
	envFloat("ZERO_ROW_TOLERANCE", &e.ZeroRowTolerance)

	if val := os.Getenv(EnvPrefix + "SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			e.Seed = seed
		} else {
			klog.Warningf("config: ignoring %sSEED=%q: %v", EnvPrefix, val, err)
		}
	}
	if val := os.Getenv(EnvPrefix + "ALGORITHM"); val != "" {
		if alg, err := reduce.ParseAlgorithm(val); err == nil {
			e.Algorithm = alg
		} else {
			klog.Warningf("config: ignoring %sALGORITHM=%q: %v", EnvPrefix, val, err)
		}
	}
	if val := os.Getenv(EnvPrefix + "IN_SAMPLE_VERTICES"); val != "" {
		e.InSampleVertices = splitList(val)
		e.InSampleIndices = nil
	}
	if dir := os.Getenv(EnvPrefix + "STORE_DIR"); dir != "" {
		cfg.Store.Dir = dir
	}
}

func envInt(key string, dst *int) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		klog.Warningf("config: ignoring %s%s=%q: %v", EnvPrefix, key, val, err)
		return
	}
	*dst = n
}

func envFloat(key string, dst *float64) {
	val := os.Getenv(EnvPrefix + key)
	if val == "" {
		return
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		klog.Warningf("config: ignoring %s%s=%q: %v", EnvPrefix, key, val, err)
		return
	}
	*dst = f
}

func envBool(key string, dst *bool) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		*dst = parseBool(val, *dst)
	}
}

// parseBool parses a boolean from string with a default value.
func parseBool(s string, defaultVal bool) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultVal
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// EmbedOptions converts the embed section into model options. An explicit
// in-sample list takes precedence over the proportion.
func (c *Config) EmbedOptions() []embed.Option {
	e := c.Embed
	opts := []embed.Option{
		embed.WithComponents(e.Components),
		embed.WithElbows(e.Elbows),
		embed.WithAlgorithm(e.Algorithm),
		embed.WithIterations(e.Iterations),
		embed.WithCheckLCC(e.CheckLCC),
		embed.WithInSampleProportion(e.InSampleProportion),
		embed.WithConnectedAttempts(e.ConnectedAttempts),
		embed.WithSemiSupervised(e.SemiSupervised),
		embed.WithSeed(e.Seed),
		embed.WithZeroRowTolerance(e.ZeroRowTolerance),
		embed.WithCommittedLimit(e.CommittedLimit),
		embed.WithDiagonalAugmentation(e.DiagonalAugmentation),
	}
	switch {
	case len(e.InSampleVertices) > 0:
		opts = append(opts, embed.WithInSampleVertices(e.InSampleVertices...))
	case len(e.InSampleIndices) > 0:
		opts = append(opts, embed.WithInSampleIndices(e.InSampleIndices...))
	}

	return opts
}

// Validate checks the tool settings and builds a throwaway model to check
// the embed settings with the same rules embed.New applies.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("Validate: workers %d < 1: %w", c.Workers, ErrInvalidConfig)
	}
	if !c.Store.InMemory && strings.TrimSpace(c.Store.Dir) == "" {
		return fmt.Errorf("Validate: store.dir is empty: %w", ErrInvalidConfig)
	}
	if len(c.Embed.InSampleVertices) > 0 && len(c.Embed.InSampleIndices) > 0 {
		return fmt.Errorf("Validate: in_sample_vertices and in_sample_indices are exclusive: %w", ErrInvalidConfig)
	}
	if _, err := embed.New(c.EmbedOptions()...); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ExampleConfigYAML is a commented configuration file with default values.
const ExampleConfigYAML = `# graspologic configuration

embed:
  components: 0            # 0 = choose d from the singular value elbows
  elbows: 2
  algorithm: randomized    # randomized | full | truncated
  iterations: 5
  check_lcc: true
  in_sample_proportion: 1
  # in_sample_vertices: [a, b, c]
  connected_attempts: 100
  semi_supervised: false
  seed: 0
  zero_row_tolerance: 1e-12
  committed_limit: 0       # 0 = unbounded growth in semi-supervised mode
  diagonal_augmentation: false

store:
  dir: ./graspologic-data
  in_memory: false

workers: 4
`
