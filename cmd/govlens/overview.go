package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"govlens/internal/period"
	"govlens/internal/query"
)

var (
	overviewFormat  string
	overviewPeriod  string
	overviewOffline bool
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show governance KPIs and insights for an activity period",
	Long: `Show the governance overview: campaign/canvas counts, catalog
saturation, and the prioritized governance insights.

Examples:
  govlens overview
  govlens overview --period="Last 30 Days"
  govlens overview --offline --format=human`,
	Run: runOverview,
}

func init() {
	overviewCmd.Flags().StringVar(&overviewFormat, "format", "json", "Output format (json, yaml, human)")
	overviewCmd.Flags().StringVar(&overviewPeriod, "period", period.AllTime, "Activity period label")
	overviewCmd.Flags().BoolVar(&overviewOffline, "offline", false, "Use the local snapshot instead of fetching")
	rootCmd.AddCommand(overviewCmd)
}

// OverviewResponseCLI contains KPIs and insights for CLI output
type OverviewResponseCLI struct {
	Period        string          `json:"period"`
	PeriodCaption string          `json:"periodCaption"`
	Kpis          query.KPIs      `json:"kpis"`
	Insights      []query.Finding `json:"insights"`
}

func runOverview(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(overviewFormat)
	engine := mustGetEngine(overviewOffline, logger)

	ids, r, err := engine.InScopeAssetIDs(overviewPeriod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	response := &OverviewResponseCLI{
		Period:        overviewPeriod,
		PeriodCaption: period.Caption(r),
		Kpis:          engine.KPIs(ids),
		Insights:      engine.Insights(ids),
	}

	output, err := FormatResponse(response, OutputFormat(overviewFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Overview completed", map[string]interface{}{
		"inScopeAssets": len(ids),
		"duration":      time.Since(start).Milliseconds(),
	})
}
