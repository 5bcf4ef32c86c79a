// Package config loads and validates the pagewidget configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagewidget/internal/logging"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Environment overrides.
const (
	EnvHome         = "PAGEWIDGET_HOME"
	EnvLogLevel     = "PAGEWIDGET_LOG_LEVEL"
	EnvLogFormat    = "PAGEWIDGET_LOG_FORMAT"
	EnvOutputFormat = "PAGEWIDGET_OUTPUT_FORMAT"
)

const (
	configFileName  = "config.yaml"
	defaultBoundary = 1
	defaultAround   = 2
)

// Config is the top-level configuration document.
type Config struct {
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Output   OutputConfig   `json:"output"   yaml:"output"`
	Logging  LoggingConfig  `json:"logging"  yaml:"logging"`

	configPath string
}

// DefaultsConfig holds the sizes used when a request omits them.
type DefaultsConfig struct {
	Boundary int `json:"boundary" yaml:"boundary"`
	Around   int `json:"around"   yaml:"around"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `json:"default_format" yaml:"default_format"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `json:"level"  yaml:"level"`
	Format string `json:"format" yaml:"format"`
	File   string `json:"file"   yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{Boundary: defaultBoundary, Around: defaultAround},
		Output:   OutputConfig{DefaultFormat: FormatText},
		Logging:  LoggingConfig{Level: "warn"},
	}
}

// New returns the configuration from the config directory with environment
// overrides applied. A missing file yields the defaults, and so does a file
// that cannot be read or parsed; use NewWithOverlay to see that error.
func New() *Config {
	cfg, err := loadHome()
	if err != nil {
		cfg = Default()
		if path, pathErr := DefaultConfigPath(); pathErr == nil {
			cfg.configPath = path
		}
	}
	cfg.applyEnvOverrides()
	return cfg
}

// NewWithOverlay is New with the file at overlayPath shallow-merged on top of
// the config directory file. Environment overrides still win. An empty
// overlayPath only loads the config directory file. A config directory file
// that exists but cannot be read or parsed is an error.
func NewWithOverlay(overlayPath string) (*Config, error) {
	cfg, err := loadHome()
	if err != nil {
		return nil, err
	}
	if overlayPath != "" {
		if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// loadHome reads config.yaml from the config directory. Only a missing file
// or an unresolvable home directory falls back to the defaults.
func loadHome() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Default(), nil //nolint:nilerr // No home directory means no config file.
	}
	return Load(path)
}

// Load reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Defaults.Boundary < 0 {
		return fmt.Errorf("defaults.boundary must be >= 0, got %d", c.Defaults.Boundary)
	}
	if c.Defaults.Around < 0 {
		return fmt.Errorf("defaults.around must be >= 0, got %d", c.Defaults.Around)
	}
	if err := ValidateOutputFormat(c.Output.DefaultFormat); err != nil {
		return fmt.Errorf("output.default_format: %w", err)
	}
	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	return nil
}

// ValidateOutputFormat reports whether format is text, json or yaml.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
	}
}

// ConfigPath returns the file this configuration was loaded from or will be
// saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file used by Save.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the configuration as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.configPath, err)
	}
	return nil
}
