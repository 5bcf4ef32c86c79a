package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pagewidget/internal/config"
	"github.com/rshade/pagewidget/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagewidget CLI.
// It loads configuration, wires up logging and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.Result
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "pagewidget",
		Short: "Compute page-number navigation widgets",
		Long: `pagewidget computes the compact page navigation control shown under paginated
listings, such as "1 2 ... 8 9 10 11 12 ... 19 20".

Pages at both ends (the boundary) and pages around the current page are kept;
every run of omitted pages becomes a single "..." gap.`,
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewWithOverlay(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"configuration file merged over $PAGEWIDGET_HOME/config.yaml")
	cmd.AddCommand(NewRenderCmd(), NewBatchCmd(), newConfigCmd())

	// PersistentPostRunE is skipped when RunE fails, so cleanup wraps RunE.
	wrapRunE(cmd, func(cmd *cobra.Command, runErr error) error {
		return cleanupLogging(cmd, logResult, runErr)
	})

	return cmd
}

// wrapRunE makes after run once RunE of cmd or any descendant returns,
// whether or not it failed. The RunE error takes precedence.
func wrapRunE(cmd *cobra.Command, after func(*cobra.Command, error) error) {
	for _, sub := range cmd.Commands() {
		wrapRunE(sub, after)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := run(c, args)
		if afterErr := after(c, err); err == nil {
			err = afterErr
		}
		return err
	}
}

const rootCmdExample = `  # Page 10 of 20 with two boundary pages and two pages around
  pagewidget render 10 20 2 2

  # Use the configured default boundary and around sizes
  pagewidget render 4 5

  # JSON output
  pagewidget render 10 20 2 2 --output json

  # Many widgets at once, one "current total boundary around" per line
  pagewidget batch requests.txt

  # Write a default configuration file
  pagewidget config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
