package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govlens/internal/period"
	"govlens/internal/query"
)

var (
	riskFormat  string
	riskPeriod  string
	riskOffline bool
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "List ghost fields referenced in content but missing from the catalog",
	Long: `List ghost fields for an activity period: fields referenced in
content blocks but absent from the catalog schema, with occurrence and
affected-asset counts.

Examples:
  govlens risk
  govlens risk --period="Year to Date (YTD)" --format=human`,
	Run: runRisk,
}

func init() {
	riskCmd.Flags().StringVar(&riskFormat, "format", "json", "Output format (json, yaml, human)")
	riskCmd.Flags().StringVar(&riskPeriod, "period", period.AllTime, "Activity period label")
	riskCmd.Flags().BoolVar(&riskOffline, "offline", false, "Use the local snapshot instead of fetching")
	rootCmd.AddCommand(riskCmd)
}

// RiskResponseCLI contains the ghost field table for CLI output
type RiskResponseCLI struct {
	Period        string                `json:"period"`
	PeriodCaption string                `json:"periodCaption"`
	GhostFields   []query.GhostFieldRow `json:"ghostFields"`
}

func runRisk(cmd *cobra.Command, args []string) {
	logger := newLogger(riskFormat)
	engine := mustGetEngine(riskOffline, logger)

	ids, r, err := engine.InScopeAssetIDs(riskPeriod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	response := &RiskResponseCLI{
		Period:        riskPeriod,
		PeriodCaption: period.Caption(r),
		GhostFields:   engine.GhostFields(ids),
	}

	output, err := FormatResponse(response, OutputFormat(riskFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
