// Package config loads YAML project manifests.
//
// A manifest names where the datasets live, lists them in the order they
// are aggregated, and carries the presentation settings of the run:
//
//	name: Rab5 screen
//	store:
//	  kind: local
//	  root: data
//	datasets:
//	  - name: This study
//	    path: genes/this_study.txt
//	  - name: Li 2016
//	    path: genes/li2016_fly.txt
//	    orthologs: orthologs/li2016.tsv
//	mode: inclusive
//	of_interest: [This study]
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rablab/interactome/model"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid manifest")

// Store kinds.
const (
	StoreLocal = "local"
	StoreS3    = "s3"
	StoreMinIO = "minio"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTSV  = "tsv"
)

// Environment variables overriding store credentials.
const (
	EnvAccessKey = "INTERACTOME_ACCESS_KEY"
	EnvSecretKey = "INTERACTOME_SECRET_KEY"
	EnvEndpoint  = "INTERACTOME_ENDPOINT"
)

// Config is a project manifest.
type Config struct {
	Name string `yaml:"name"`

	Store    StoreConfig `yaml:"store"`
	Datasets []Dataset   `yaml:"datasets"`

	// Mode is "strict" or "inclusive" ("total" is accepted).
	Mode       string   `yaml:"mode"`
	OfInterest []string `yaml:"of_interest"`

	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects where dataset paths are resolved.
type StoreConfig struct {
	Kind string `yaml:"kind"` // local, s3, minio

	// Root is the local directory. Relative roots are resolved against the
	// manifest's directory by Load.
	Root string `yaml:"root,omitempty"`

	Bucket   string `yaml:"bucket,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Region   string `yaml:"region,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	UseSSL   bool   `yaml:"use_ssl,omitempty"`

	// Credentials come from the environment only.
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`

	// RateLimit caps bytes read per second. Zero disables it.
	RateLimit int `yaml:"rate_limit,omitempty"`
}

// Dataset is one collection of the aggregation.
type Dataset struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	// Orthologs optionally names an ortholog table translating the list to
	// human symbols.
	Orthologs string `yaml:"orthologs,omitempty"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, tsv
	Sort   string `yaml:"sort"`   // degree, count
	// MinDegree overrides the mode's default when positive.
	MinDegree int    `yaml:"min_degree,omitempty"`
	Codec     string `yaml:"codec,omitempty"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the defaults applied before parsing.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Kind: StoreLocal,
			Root: ".",
		},
		Mode: model.Strict.String(),
		Output: OutputConfig{
			Format: FormatText,
			Sort:   "degree",
			Codec:  "go-json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Parse decodes a manifest over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Store.Kind == StoreLocal && !filepath.IsAbs(cfg.Store.Root) {
		cfg.Store.Root = filepath.Join(filepath.Dir(path), cfg.Store.Root)
	}
	return cfg, nil
}

// Save writes the manifest to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvAccessKey); v != "" {
		c.Store.AccessKey = v
	}
	if v := os.Getenv(EnvSecretKey); v != "" {
		c.Store.SecretKey = v
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Store.Endpoint = v
	}
}

// Validate checks the manifest. Duplicate or missing dataset names are left
// to the aggregation, which rejects them as configuration errors.
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StoreLocal:
	case StoreS3:
		if c.Store.Bucket == "" {
			return invalid("store.bucket is required for %s", c.Store.Kind)
		}
	case StoreMinIO:
		if c.Store.Bucket == "" || c.Store.Endpoint == "" {
			return invalid("store.bucket and store.endpoint are required for %s", c.Store.Kind)
		}
	default:
		return invalid("unknown store kind %q", c.Store.Kind)
	}
	if c.Store.RateLimit < 0 {
		return invalid("store.rate_limit must not be negative")
	}

	for i, d := range c.Datasets {
		if d.Path == "" {
			return invalid("datasets[%d]: path is required", i)
		}
	}

	if _, err := c.ModeValue(); err != nil {
		return invalid("%v", err)
	}

	names := c.DatasetNames()
	for _, n := range c.OfInterest {
		if !slices.Contains(names, n) {
			return invalid("of_interest: unknown dataset %q", n)
		}
	}

	switch c.Output.Format {
	case FormatText, FormatJSON, FormatTSV:
	default:
		return invalid("unknown output format %q", c.Output.Format)
	}

	if _, err := c.Logging.SlogLevel(); err != nil {
		return invalid("logging.level: %v", err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return invalid("unknown logging format %q", c.Logging.Format)
	}
	return nil
}

// ModeValue parses Mode.
func (c *Config) ModeValue() (model.Mode, error) {
	return model.ParseMode(c.Mode)
}

// DatasetNames returns the dataset names in manifest order.
func (c *Config) DatasetNames() []string {
	out := make([]string, len(c.Datasets))
	for i, d := range c.Datasets {
		out[i] = d.Name
	}
	return out
}

// SlogLevel parses Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(l.Level))
	return lvl, err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
