package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"govlens/internal/config"
	goverrors "govlens/internal/errors"
	"govlens/internal/ingest"
	"govlens/internal/logging"
	"govlens/internal/query"
	"govlens/internal/session"
	"govlens/internal/storage"
)

var (
	sessionOnce   sync.Once
	sharedSession *session.Session
	sharedConfig  *config.Config
	sessionErr    error
)

// getSession loads the dataset once per invocation: from the local snapshot
// when offline is set, otherwise from the configured data source (caching
// into the snapshot as a side effect).
func getSession(offline bool, logger *logging.Logger) (*session.Session, *config.Config, error) {
	sessionOnce.Do(func() {
		root := mustGetRoot()

		cfg, err := config.LoadConfig(root)
		if err != nil {
			logger.Warn("Failed to load config, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.DefaultConfig()
		}
		sharedConfig = cfg

		snap, err := storage.Open(root, logger)
		if err != nil {
			logger.Warn("Snapshot store unavailable", map[string]interface{}{
				"error": err.Error(),
			})
			snap = nil
		}

		if offline {
			if snap == nil {
				sessionErr = goverrors.NewGovError(goverrors.SessionNotReady,
					"offline mode requires a snapshot store", nil,
					goverrors.GetSuggestedFixes(goverrors.SessionNotReady))
				return
			}
			sharedSession, sessionErr = session.LoadOffline(snap, logger)
			return
		}

		fetcher := ingest.NewFetcher(cfg, logger)
		sharedSession, sessionErr = session.Load(newContext(), fetcher, snap, logger)
	})

	return sharedSession, sharedConfig, sessionErr
}

// mustGetSession returns the loaded session or exits on error.
func mustGetSession(offline bool, logger *logging.Logger) *session.Session {
	s, _, err := getSession(offline, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}
	return s
}

// mustGetEngine builds the query engine over the loaded session.
func mustGetEngine(offline bool, logger *logging.Logger) *query.Engine {
	s := mustGetSession(offline, logger)
	return query.NewEngine(s, logger, sharedConfig.Analytics)
}

// mustGetRoot returns the working directory or exits on error.
func mustGetRoot() string {
	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return root
}

// newContext creates a new context for command execution.
func newContext() context.Context {
	return context.Background()
}

// newLogger creates a logger with the specified format.
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.ParseLevel(os.Getenv("GOVLENS_LOG_LEVEL")),
	})
}
