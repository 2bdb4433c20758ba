package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gedgraph/gedgraph/internal/config"
	"github.com/gedgraph/gedgraph/internal/graph"
	"github.com/gedgraph/gedgraph/internal/mru"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "gedgraph",
		Short: "gedgraph — GEDCOM record graph engine",
		Long:  "gedgraph parses GEDCOM genealogy files into an in-memory record graph and answers ordering, lookup and provenance queries over it.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		peopleCmd(),
		personCmd(),
		familiesCmd(),
		sourcesCmd(),
		mediaCmd(),
		provenanceCmd(),
		statsCmd(),
		exportCmd(),
		narrativeCmd(),
		mcpCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// openManager loads the given GEDCOM file into a fresh manager and records
// it on the recent-files list. MRU failures are logged, never fatal.
func openManager(path string, logger *slog.Logger) (*graph.Manager, error) {
	m := graph.NewManager(logger)
	if err := m.Open(path); err != nil {
		return nil, err
	}
	recent := mru.NewList(cfg.Viewer.RecentPath, cfg.Viewer.RecentLimit)
	if err := recent.Touch(path); err != nil {
		logger.Warn("updating recent files list", "error", err)
	}
	return m, nil
}
