package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"librarydesk/internal/config"
	"librarydesk/internal/logging"
	"librarydesk/internal/platform/postgres"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "migrate [up|down|status|create NAME]",
	Short: "Apply the goose migrations of the postgres library backend",
	Long: `Runs goose against the SQL migrations in library.migrations_dir
(MIGRATIONS_DIR). The database comes from library.database_dsn (DB_DSN).`,
	Args:         validateArgs,
	SilenceUsage: true,
	RunE:         runMigrate,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// validateArgs accepts a single goose command, plus a name for create.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "up", "down", "status":
		if len(args) != 1 {
			return fmt.Errorf("%s takes no arguments", args[0])
		}
	case "create":
		if len(args) != 2 || args[1] == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
	default:
		return fmt.Errorf("unknown command: %s. Use: up, down, status, create", args[0])
	}
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dir := cfg.Library.MigrationsDir
	ctx := cmd.Context()

	pool, err := postgres.Open(ctx, cfg.Library.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger.Debug("running migrations",
		zap.String("command", command),
		zap.String("dir", dir),
		zap.String("dsn", postgres.RedactDSN(cfg.Library.DatabaseDSN)))

	if command == "create" {
		if err := postgres.Migrate(ctx, pool, dir, "create", args[1], "sql"); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Migration created: %s\n", args[1])
		return nil
	}

	if err := postgres.Migrate(ctx, pool, dir, command); err != nil {
		return err
	}
	switch command {
	case "up":
		fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied successfully")
	case "down":
		fmt.Fprintln(cmd.OutOrStdout(), "Migrations rolled back successfully")
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
