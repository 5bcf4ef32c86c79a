package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rshade/pagewidget/internal/cli"
	"github.com/rshade/pagewidget/internal/config"
	"github.com/rshade/pagewidget/internal/logging"
)

// setupCLITest isolates the config directory and environment for one test.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFormat, "json")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(logging.EnvTraceID, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// executeCmd runs the root command with args and stdin and returns its output.
func executeCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
