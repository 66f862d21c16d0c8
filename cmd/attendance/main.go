package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"librarydesk/internal/attendance"
	"librarydesk/internal/config"
	"librarydesk/internal/console"
	"librarydesk/internal/logging"
)

var (
	configPath string
	reportPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "attendance",
	Short:        "Record student check-ins and write an attendance report",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if reportPath != "" {
			cfg.Attendance.ReportFile = reportPath
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		session := attendance.NewSession()
		logger.Info("attendance session started", zap.String("session_id", session.ID))

		h := attendance.NewConsoleHandler(
			session,
			console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
			console.NewPrinter(cmd.OutOrStdout()),
			logger,
			cfg.Attendance.ReportFile,
		)
		h.Welcome()
		return h.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&reportPath, "report", "o", "", "report file (overrides attendance.report_file)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
