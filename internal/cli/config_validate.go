package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagewidget/internal/config"
)

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: non-negative default sizes, a known
output format, and a known log format and level.`,
		Example: `  # Validate current configuration
  pagewidget config validate

  # Validate and show detailed information
  pagewidget config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Configuration is valid")
	if verbose {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Configuration details:")
		_, _ = fmt.Fprintf(out, "  Config file: %s\n", cfg.ConfigPath())
		_, _ = fmt.Fprintf(out, "  Default boundary: %d\n", cfg.Defaults.Boundary)
		_, _ = fmt.Fprintf(out, "  Default around: %d\n", cfg.Defaults.Around)
		_, _ = fmt.Fprintf(out, "  Output format: %s\n", cfg.Output.DefaultFormat)
		_, _ = fmt.Fprintf(out, "  Logging level: %s\n", cfg.Logging.Level)
		_, _ = fmt.Fprintf(out, "  Log file: %s\n", cfg.Logging.File)
	}
	return nil
}
