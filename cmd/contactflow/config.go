package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contactflow/internal/model"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the current settings",
		Long: `Init writes the resolved configuration (defaults merged with any
existing file) back to the config path, so every tunable key is visible
and editable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveConfigPath()

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := model.SaveConfig(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
