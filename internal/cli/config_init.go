package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagewidget/internal/config"
)

// NewConfigInitCmd creates the config init command that writes the default
// configuration to $PAGEWIDGET_HOME/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $PAGEWIDGET_HOME/config.yaml (default ~/.pagewidget/config.yaml)
with the built-in defaults. An existing file is kept unless --force is given.`,
		Example: `  # Create the configuration file
  pagewidget config init

  # Overwrite an existing configuration file
  pagewidget config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	configPath, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	if !force {
		_, statErr := os.Stat(configPath)
		if statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", configPath, statErr)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", configPath)
	return err
}
