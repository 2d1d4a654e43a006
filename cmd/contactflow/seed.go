package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with the demonstration data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newCLILogger(cfg)

			s, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if force {
				if err := s.Reset(); err != nil {
					return err
				}
				if err := s.Seed(); err != nil {
					return err
				}
				log.Info("store reset and reseeded", "data_dir", cfg.DataDir)
				fmt.Fprintln(cmd.OutOrStdout(), "store reset and reseeded")
				return nil
			}

			// openStore already seeds a fresh database.
			fmt.Fprintln(cmd.OutOrStdout(), "store seeded (no-op if data already present)")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "discard existing data and reseed")
	return cmd
}
