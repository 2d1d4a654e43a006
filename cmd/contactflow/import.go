package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contactflow/internal/csvio"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import {requests|clients} <file>",
		Short: "Import requests or clients from a CSV file",
		Long: `Import reads a CSV file previously produced by export (or matching
its column layout) and upserts the rows. Clients are matched by id or
email; requests are matched by id. Unmatched rows create new records.`,
		Args: cobra.ExactArgs(2),
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

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[1], err)
			}
			defer f.Close()

			var summary csvio.ImportSummary
			switch args[0] {
			case "requests":
				summary, err = csvio.ImportRequests(f, s)
			case "clients":
				summary, err = csvio.ImportClients(f, s)
			default:
				return fmt.Errorf("unknown import target %q", args[0])
			}
			if err != nil {
				return err
			}

			log.Info("import finished", "target", args[0], "file", args[1],
				"created", summary.Created, "updated", summary.Updated, "skipped", summary.Skipped)
			fmt.Fprintf(cmd.OutOrStdout(), "imported: %d created, %d updated, %d skipped\n",
				summary.Created, summary.Updated, summary.Skipped)
			return nil
		},
	}
}
