package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govlens/internal/version"
)

var (
	statusFormat  string
	statusOffline bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show dataset status: table sizes, refresh time, and session info",
	Run:   runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "human", "Output format (json, yaml, human)")
	statusCmd.Flags().BoolVar(&statusOffline, "offline", false, "Use the local snapshot instead of fetching")
	rootCmd.AddCommand(statusCmd)
}

// StatusResponseCLI contains dataset status for CLI output
type StatusResponseCLI struct {
	Version        string `json:"version"`
	SessionID      string `json:"sessionId"`
	DataSource     string `json:"dataSource"`
	RefreshedAt    string `json:"refreshedAt,omitempty"`
	CatalogFields  int    `json:"catalogFields"`
	Assets         int    `json:"assets"`
	References     int    `json:"references"`
	UnresolvedRefs int    `json:"unresolvedRefs"`
	Dependencies   int    `json:"dependencies"`
	IndexedBlocks  int    `json:"indexedBlocks"`
	BlockRows      int    `json:"blockRows"`
	SkippedRows    int    `json:"skippedRows"`
}

func runStatus(cmd *cobra.Command, args []string) {
	logger := newLogger(statusFormat)
	s := mustGetSession(statusOffline, logger)

	response := &StatusResponseCLI{
		Version:        version.Version,
		SessionID:      s.ID,
		DataSource:     sharedConfig.Data.BaseURL,
		RefreshedAt:    s.RefreshedAt,
		CatalogFields:  len(s.Catalog),
		Assets:         len(s.Assets),
		References:     len(s.Joined),
		UnresolvedRefs: s.UnresolvedRefs(),
		Dependencies:   len(s.Deps),
		IndexedBlocks:  len(s.BlockIndex),
		BlockRows:      s.BlockRows,
		SkippedRows:    s.Skipped,
	}

	output, err := FormatResponse(response, OutputFormat(statusFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
