package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govlens/internal/period"
	"govlens/internal/query"
)

var (
	analyticsFormat  string
	analyticsPeriod  string
	analyticsOffline bool
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show activity timelines and cumulative usage patterns",
	Long: `Show trend analytics for an activity period: the monthly asset
activity timeline and the cumulative (Pareto) field usage series.

Examples:
  govlens analytics
  govlens analytics --period="Last 12 Months" --format=human`,
	Run: runAnalytics,
}

func init() {
	analyticsCmd.Flags().StringVar(&analyticsFormat, "format", "json", "Output format (json, yaml, human)")
	analyticsCmd.Flags().StringVar(&analyticsPeriod, "period", period.AllTime, "Activity period label")
	analyticsCmd.Flags().BoolVar(&analyticsOffline, "offline", false, "Use the local snapshot instead of fetching")
	rootCmd.AddCommand(analyticsCmd)
}

// AnalyticsResponseCLI contains trend analytics for CLI output
type AnalyticsResponseCLI struct {
	Period            string              `json:"period"`
	PeriodCaption     string              `json:"periodCaption"`
	Timeline          query.Timeline      `json:"timeline"`
	Pareto            []query.ParetoPoint `json:"pareto"`
	EightyPercentRank int                 `json:"eightyPercentRank"`
}

func runAnalytics(cmd *cobra.Command, args []string) {
	logger := newLogger(analyticsFormat)
	engine := mustGetEngine(analyticsOffline, logger)

	ids, r, err := engine.InScopeAssetIDs(analyticsPeriod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pareto := engine.Pareto(ids)
	response := &AnalyticsResponseCLI{
		Period:            analyticsPeriod,
		PeriodCaption:     period.Caption(r),
		Timeline:          engine.Timeline(ids),
		Pareto:            pareto,
		EightyPercentRank: query.ParetoCrossRank(pareto, 80),
	}

	output, err := FormatResponse(response, OutputFormat(analyticsFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
