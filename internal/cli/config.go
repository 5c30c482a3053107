package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scatterangle/pkg/config"
)

// configCommand creates the config command for printing the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	scene := newSceneFlags()
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration after defaults, --config, .env, SCATTER_* variables
and flags have been applied. The output can be saved and passed back with
--config.

Examples:
  scatterangle config > geometry.toml
  SCATTER_CELL_LENGTH=100 scatterangle config
  scatterangle config --defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if !defaults {
				var err error
				if cfg, err = scene.resolve(cmd); err != nil {
					return err
				}
			}
			c.Logger.Debug("Printing configuration", "defaults", defaults)
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	scene.register(cmd)
	cmd.Flags().BoolVar(&defaults, "defaults", false, "ignore files, environment and flags")
	return cmd
}
