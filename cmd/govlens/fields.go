package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govlens/internal/period"
	"govlens/internal/query"
)

var (
	fieldsFormat  string
	fieldsPeriod  string
	fieldsOffline bool
	fieldsLimit   int
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Rank field usage, impact, and distribution by asset type",
	Long: `Rank the most-referenced catalog fields for an activity period,
with per-field distinct-asset impact and the field-by-asset-type
cross-tabulation.

Examples:
  govlens fields
  govlens fields --limit=30
  govlens fields --period="Last 90 Days" --format=human`,
	Run: runFields,
}

func init() {
	fieldsCmd.Flags().StringVar(&fieldsFormat, "format", "json", "Output format (json, yaml, human)")
	fieldsCmd.Flags().StringVar(&fieldsPeriod, "period", period.AllTime, "Activity period label")
	fieldsCmd.Flags().BoolVar(&fieldsOffline, "offline", false, "Use the local snapshot instead of fetching")
	fieldsCmd.Flags().IntVar(&fieldsLimit, "limit", 0, "Maximum top fields to return (default from config)")
	rootCmd.AddCommand(fieldsCmd)
}

// FieldsResponseCLI contains field usage analytics for CLI output
type FieldsResponseCLI struct {
	Period        string             `json:"period"`
	PeriodCaption string             `json:"periodCaption"`
	TopFields     []query.FieldCount `json:"topFields"`
	Impact        []query.ImpactRow  `json:"impact"`
	CrossTab      query.CrossTab     `json:"crossTab"`
}

func runFields(cmd *cobra.Command, args []string) {
	logger := newLogger(fieldsFormat)
	engine := mustGetEngine(fieldsOffline, logger)

	ids, r, err := engine.InScopeAssetIDs(fieldsPeriod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	response := &FieldsResponseCLI{
		Period:        fieldsPeriod,
		PeriodCaption: period.Caption(r),
		TopFields:     engine.TopFields(ids, fieldsLimit),
		Impact:        engine.FieldImpact(ids),
		CrossTab:      engine.CrossTab(ids),
	}

	output, err := FormatResponse(response, OutputFormat(fieldsFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
