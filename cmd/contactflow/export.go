package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"contactflow/internal/csvio"
	"contactflow/internal/model"
	"contactflow/internal/store"
)

func newExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "export {requests|clients}",
		Short:     "Export requests or clients as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"requests", "clients"},
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

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			switch args[0] {
			case "requests":
				reqs, err := store.GetAll[model.Request](s, store.CollectionRequests)
				if err != nil {
					return err
				}
				log.Info("exporting requests", "count", len(reqs))
				return csvio.ExportRequests(w, reqs)
			case "clients":
				users, err := store.GetAll[model.User](s, store.CollectionUsers)
				if err != nil {
					return err
				}
				log.Info("exporting clients", "users", len(users))
				return csvio.ExportClients(w, users)
			default:
				return fmt.Errorf("unknown export target %q", args[0])
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
