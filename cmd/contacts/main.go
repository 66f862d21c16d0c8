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
	"librarydesk/internal/console"
	"librarydesk/internal/contact"
	"librarydesk/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Contact book: add, search, update, delete and JSON export/import",
	Long: `Interactive contact book management system.

Contacts live in a CSV file. Export writes them to a JSON file; import reads
that file back for display only. Every operation is appended to the log file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runContacts,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runContacts(cmd *cobra.Command, args []string) error {
	oplog, err := logging.OpenOperationLog(cfg.Contacts.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := oplog.Close(); err != nil {
			logger.Warn("closing operation log failed", zap.Error(err))
		}
	}()

	oplog.Info("Application started")
	defer oplog.Info("Application closed")

	logger.Debug("contact directory",
		zap.String("csv_file", cfg.Contacts.CSVFile),
		zap.String("json_file", cfg.Contacts.JSONFile),
		zap.String("log_file", cfg.Contacts.LogFile))

	h := contact.NewConsoleHandler(
		contact.NewDirectory(cfg.Contacts.CSVFile, oplog.Logger),
		cfg.Contacts.JSONFile,
		console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		console.NewPrinter(cmd.OutOrStdout()),
		logger,
	)
	h.Welcome()
	return h.Run(cmd.Context())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
