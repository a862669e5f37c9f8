package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/groupsplit/internal/config"
	"github.com/mmynk/groupsplit/internal/storage/sqlite"
	"github.com/mmynk/groupsplit/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(config.Load()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Flags override values loaded from the environment.
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "splitter",
		Short: "Shared-expense splitter server",
		Long: `Serves the splitter.v1 Connect services (groups, members, expenses)
over HTTP/1.1 and h2c, backed by a SQLite database.

Run without a subcommand to start the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup()
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path (env DB_PATH)")
	root.Flags().StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port (env PORT)")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cfg.DBPath)
		},
	})

	return root
}

func runMigrate(dbPath string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	if err := sqlite.Migrate(dbPath); err != nil {
		return err
	}
	slog.Info("Migrations applied", "database", dbPath)
	return nil
}
