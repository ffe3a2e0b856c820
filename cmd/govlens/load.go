package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"govlens/internal/config"
	"govlens/internal/ingest"
	"govlens/internal/session"
	"govlens/internal/storage"
)

var (
	loadFormat     string
	loadNoSnapshot bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Fetch the governance tables and refresh the local snapshot",
	Long: `Fetch all governance tables from the configured data source, build
the block index and the joined reference table, and cache the raw files in
the local snapshot so later commands can run --offline.

Examples:
  govlens load
  govlens load --no-snapshot`,
	Run: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadFormat, "format", "human", "Log format (json, human)")
	loadCmd.Flags().BoolVar(&loadNoSnapshot, "no-snapshot", false, "Skip caching the fetched tables")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(loadFormat)
	root := mustGetRoot()

	cfg, err := config.LoadConfig(root)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		cfg = config.DefaultConfig()
	}

	var snap *storage.Snapshot
	if !loadNoSnapshot {
		snap, err = storage.Open(root, logger)
		if err != nil {
			logger.Warn("Snapshot store unavailable", map[string]interface{}{
				"error": err.Error(),
			})
			snap = nil
		}
	}

	fetcher := ingest.NewFetcher(cfg, logger)
	s, err := session.Load(newContext(), fetcher, snap, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to load dashboard data: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Load completed", map[string]interface{}{
		"session":  s.ID,
		"duration": time.Since(start).Milliseconds(),
	})
}
