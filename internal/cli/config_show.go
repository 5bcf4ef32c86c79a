package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/pagewidget/internal/config"
)

// NewConfigShowCmd creates the config show command that prints the effective
// configuration, after file overlays and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output
			if format == config.FormatText {
				format = config.FormatYAML
			}
			return writeStructured(cmd.OutOrStdout(), format, config.GetGlobalConfig())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.FormatYAML, "output format: yaml or json")

	return cmd
}
