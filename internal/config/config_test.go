package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagewidget/internal/config"
	"github.com/rshade/pagewidget/internal/logging"
)

// isolateHome points the config directory at a fresh temp dir and clears
// environment overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvOutputFormat, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNew_MissingFileUsesDefaults(t *testing.T) {
	dir := isolateHome(t)

	cfg := config.New()
	assert.Equal(t, config.Default().Defaults, cfg.Defaults)
	assert.Equal(t, config.FormatText, cfg.Output.DefaultFormat)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigPath())
	require.NoError(t, cfg.Validate())
}

func TestNew_ReadsFileAndEnv(t *testing.T) {
	dir := isolateHome(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), `
defaults:
  boundary: 3
  around: 0
output:
  default_format: json
logging:
  level: debug
`)
	t.Setenv(config.EnvLogLevel, "error")

	cfg := config.New()
	assert.Equal(t, 3, cfg.Defaults.Boundary)
	assert.Equal(t, 0, cfg.Defaults.Around)
	assert.Equal(t, config.FormatJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, "error", cfg.Logging.Level, "env overrides file")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "output:\n  default_format: yaml\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Output.DefaultFormat)
	assert.Equal(t, config.Default().Defaults, cfg.Defaults)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "defaults: [oops")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*config.Config) {}},
		{name: "negative boundary", mutate: func(c *config.Config) { c.Defaults.Boundary = -1 },
			wantErr: "defaults.boundary"},
		{name: "negative around", mutate: func(c *config.Config) { c.Defaults.Around = -2 },
			wantErr: "defaults.around"},
		{name: "unknown output format", mutate: func(c *config.Config) { c.Output.DefaultFormat = "html" },
			wantErr: "output.default_format"},
		{name: "unknown log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format"},
		{name: "unknown log level", mutate: func(c *config.Config) { c.Logging.Level = "chatty" },
			wantErr: "logging.level"},
		{name: "uppercase log level", mutate: func(c *config.Config) { c.Logging.Level = "WARN" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := config.Default()
	cfg.Defaults.Boundary = 4
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Defaults.Boundary)
}

func TestSave_NoPath(t *testing.T) {
	assert.Error(t, config.Default().Save())
}

func TestShallowMergeYAML(t *testing.T) {
	target := config.Default()
	target.Logging.File = "/var/log/pagewidget.log"
	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	writeFile(t, overlay, `
defaults:
  boundary: 5
logging:
  level: warn
unknown: ignored
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, 5, target.Defaults.Boundary)
	assert.Equal(t, 0, target.Defaults.Around, "section replaced as a whole")
	assert.Equal(t, "warn", target.Logging.Level)
	assert.Empty(t, target.Logging.File, "section replaced as a whole")
	assert.Equal(t, config.FormatText, target.Output.DefaultFormat, "absent section untouched")
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	assert.Error(t, config.ShallowMergeYAML(nil, "x"))
	assert.Error(t, config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	assert.Equal(t, logging.OutputStderr, lc.ToLoggingConfig().Output)

	lc.File = "/tmp/pagewidget.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/pagewidget.log", got.File)
	assert.Equal(t, "debug", got.Level)
}

func TestGetGlobalConfig(t *testing.T) {
	isolateHome(t)
	t.Setenv(config.EnvOutputFormat, "yaml")

	cfg := config.GetGlobalConfig()
	assert.Same(t, cfg, config.GetGlobalConfig())
	assert.Equal(t, config.FormatYAML, cfg.Output.DefaultFormat)
	assert.Equal(t, "warn", config.GetLoggingConfig().Level)
}

func TestNewWithOverlay(t *testing.T) {
	dir := isolateHome(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "defaults:\n  boundary: 3\n  around: 3\noutput:\n  default_format: yaml\n")
	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	writeFile(t, overlay, "defaults:\n  boundary: 0\n  around: 1\n")
	t.Setenv(config.EnvOutputFormat, "json")

	cfg, err := config.NewWithOverlay(overlay)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultsConfig{Boundary: 0, Around: 1}, cfg.Defaults)
	assert.Equal(t, config.FormatJSON, cfg.Output.DefaultFormat)

	_, err = config.NewWithOverlay(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewWithOverlay_BrokenHomeFile(t *testing.T) {
	dir := isolateHome(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "defaults: [oops\n  boundary: 9\n")

	_, err := config.NewWithOverlay("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")

	cfg := config.New()
	assert.Equal(t, config.Default().Defaults, cfg.Defaults)
}

func TestNewWithOverlay_WrongTypeInHomeFile(t *testing.T) {
	dir := isolateHome(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "defaults:\n  boundary: many\n")

	_, err := config.NewWithOverlay("")
	require.Error(t, err)
}
