package main

import (
	"fmt"

	"github.com/hdrones8/ortofix/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// createInitCommand creates the command writing a default config file
func createInitCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := configPathFromCommand(env, cmd)
			if err != nil {
				return err
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			exists, err := afero.Exists(env.fs, configPath)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", configPath, err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
			}

			data, err := config.DefaultConfigYAML()
			if err != nil {
				return err //nolint:wrapcheck // already describes the failure
			}
			if err := afero.WriteFile(env.fs, configPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", configPath, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	return cmd
}
