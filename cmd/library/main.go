package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"librarydesk/internal/circulation"
	"librarydesk/internal/config"
	"librarydesk/internal/console"
	"librarydesk/internal/logging"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "library",
	Short: "Library inventory: books, members, loans and returns",
	Long: `Interactive library inventory system.

Books and members are loaded from the configured backend at startup and saved
after every change. The file backend keeps them in two JSON documents; the
postgres backend keeps them in the tables created by the migrate tool.`,
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
	RunE: runLibrary,
}

// initConfigCmd writes the effective settings as a starter yaml file.
var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write the current configuration to a yaml file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(initConfigCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo, closeRepo, err := circulation.OpenRepository(ctx, cfg.Library, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	out := console.NewPrinter(cmd.OutOrStdout())
	store := circulation.NewStore(repo)
	if err := store.Load(ctx); err != nil {
		logger.Warn("loading library data failed, affected collections start empty", zap.Error(err))
		out.Error("Error loading data: " + err.Error())
	}
	logger.Info("library loaded",
		zap.String("backend", cfg.Library.Backend),
		zap.Int("books", len(store.Books())),
		zap.Int("members", len(store.Members())))

	h := circulation.NewConsoleHandler(store, console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), out, logger)
	h.Welcome()
	return h.Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
