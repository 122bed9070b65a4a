package main

import (
	"fmt"

	"github.com/lerenn/globr/cmd/globr/internal/cli"
	"github.com/lerenn/globr/configs"
	"github.com/lerenn/globr/pkg/config"
	"github.com/spf13/cobra"
)

var force bool

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write the default globr configuration",
		Long: `Write the default configuration file (~/.globr/config.yaml, or the path given with --config).

Flags:
  --force   Overwrite an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := cli.NewDependencies(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			path := deps.Config.GetConfigPath()
			exists, err := deps.FS.Exists(path)
			if err != nil {
				return fmt.Errorf("failed to check configuration file: %w", err)
			}
			if exists && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
			}

			// The embedded file must stay loadable
			if _, err := config.FromYAML(configs.DefaultConfigYAML); err != nil {
				return err
			}

			if err := deps.FS.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644); err != nil {
				return fmt.Errorf("failed to write configuration file: %w", err)
			}

			if cli.Verbose {
				deps.Logger.Logf("Wrote default configuration to %s", path)
			}
			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			}
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return initCmd
}
