package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
)

// newConfigInitCmd creates the config init command, which writes a config
// file holding the built-in defaults.
func newConfigInitCmd(rt *runtime) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at the path given by
--config, or $FOOTPRINT_HOME/config.yaml, or ~/.footprint/config.yaml.

An existing file is left alone unless --force is given.`,
		Example: `  # Create configuration
  footprint config init

  # Create configuration, overwriting existing
  footprint config init --force`,
		Annotations: map[string]string{annotationSkipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, rt.cfg.ConfigPath(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initConfig saves the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	if path == "" {
		return &ExitError{Code: ExitCodeConfig, Err: errors.New("cannot determine config path, use --config")}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return &ExitError{
				Code: ExitCodeConfig,
				Err:  errors.New("configuration file already exists, use --force to overwrite"),
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Debug().Ctx(cmd.Context()).Str("path", path).Bool("force", force).Msg("configuration initialized")

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}
