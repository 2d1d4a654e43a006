package main

import (
	"os"
)

var configPath string

func main() {
	rootCmd := newRootCommand()
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(
		newExportCommand(),
		newImportCommand(),
		newSeedCommand(),
		newConfigCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
