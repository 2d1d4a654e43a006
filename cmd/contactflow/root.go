package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"contactflow/internal/app"
	"contactflow/internal/authapi"
	"contactflow/internal/fanout"
	"contactflow/internal/logging"
	"contactflow/internal/model"
	"contactflow/internal/service"
	"contactflow/internal/session"
	"contactflow/internal/store"
	"contactflow/internal/theme"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contactflow",
		Short: "Client service request management in the terminal",
		Long: `ContactFlow tracks client service requests, comments, feedback,
and the notifications and activity log they produce.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

// loadConfig resolves the config path and reads the configuration.
func loadConfig() (*model.AppConfig, error) {
	return model.LoadConfig(resolveConfigPath())
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return model.DefaultConfigPath()
}

// newCLILogger returns the stderr logger used by one-shot subcommands,
// which do not own the terminal the way the TUI does.
func newCLILogger(cfg *model.AppConfig) *slog.Logger {
	return logging.NewStderrLogger(logging.ParseLevel(cfg.LogLevel))
}

// openStore opens the SQLite-backed store under the configured data dir
// and seeds the sample data set on first run.
func openStore(cfg *model.AppConfig) (*store.Store, func() error, error) {
	backend, err := store.NewSQLiteBackend(filepath.Join(cfg.DataDir, "contactflow.db"))
	if err != nil {
		return nil, nil, err
	}

	s := store.New(backend)
	if err := s.Seed(); err != nil {
		_ = backend.Close()
		return nil, nil, fmt.Errorf("seeding store: %w", err)
	}
	return s, backend.Close, nil
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.NewFileLogger(cfg.DataDir, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	s, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if dark, ok, err := store.GetValue[bool](s, store.SlotDarkMode); err == nil && ok {
		theme.ApplyDarkMode(dark)
	}

	var remote *authapi.Client
	if cfg.Auth.Endpoint != "" {
		remote = authapi.NewClient(cfg.Auth.Endpoint)
	}
	sessions := session.NewManager(s, session.NewKeyringStorage(cfg.DataDir), remote)

	runner := fanout.NewRunner(s, logger)
	svc := service.New(s, runner, logger)

	program := tea.NewProgram(
		app.New(s, sessions, svc, cfg.Display.PageSize),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
