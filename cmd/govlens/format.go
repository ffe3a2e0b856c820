package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatYAML:
		return formatYAML(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatYAML(resp interface{}) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *OverviewResponseCLI:
		return formatOverviewHuman(v), nil
	case *FieldsResponseCLI:
		return formatFieldsHuman(v), nil
	case *RiskResponseCLI:
		return formatRiskHuman(v), nil
	case *AnalyticsResponseCLI:
		return formatAnalyticsHuman(v), nil
	case *StatusResponseCLI:
		return formatStatusHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatOverviewHuman(v *OverviewResponseCLI) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Governance Overview - %s (%s)\n", v.Period, v.PeriodCaption)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "Campaigns:      %d\n", v.Kpis.Campaigns)
	fmt.Fprintf(&b, "Canvases:       %d\n", v.Kpis.Canvases)
	fmt.Fprintf(&b, "Saturation:     %.0f%%\n", v.Kpis.Saturation)
	fmt.Fprintf(&b, "Catalog Fields: %d\n\n", v.Kpis.CatalogFields)

	b.WriteString("Insights:\n")
	for _, ins := range v.Insights {
		fmt.Fprintf(&b, "  [%s] %s\n", ins.Kind, ins.Title)
		fmt.Fprintf(&b, "      %s\n", ins.Message)
	}
	return b.String()
}

func formatFieldsHuman(v *FieldsResponseCLI) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Field Intelligence - %s (%s)\n", v.Period, v.PeriodCaption)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(v.TopFields) == 0 {
		b.WriteString("No field usage data for this period.\n")
		return b.String()
	}

	b.WriteString("Top Fields:\n")
	for i, f := range v.TopFields {
		fmt.Fprintf(&b, "  %2d. %-40s %6d refs\n", i+1, f.FieldName, f.References)
	}

	b.WriteString("\nField Impact (distinct assets):\n")
	fmt.Fprintf(&b, "  %-40s %9s %8s %6s\n", "Field", "Campaigns", "Canvases", "Total")
	for _, r := range v.Impact {
		fmt.Fprintf(&b, "  %-40s %9d %8d %6d\n", r.Field, r.Campaigns, r.Canvases, r.Total)
	}
	return b.String()
}

func formatRiskHuman(v *RiskResponseCLI) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Risk Center - %s (%s)\n", v.Period, v.PeriodCaption)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(v.GhostFields) == 0 {
		b.WriteString("No ghost fields in this period.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%-40s %11s %15s\n", "Ghost Field", "Occurrences", "Affected Assets")
	for _, r := range v.GhostFields {
		fmt.Fprintf(&b, "%-40s %11d %15d\n", r.Field, r.Occurrences, r.AffectedAssets)
	}
	return b.String()
}

func formatAnalyticsHuman(v *AnalyticsResponseCLI) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analytics - %s (%s)\n", v.Period, v.PeriodCaption)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("Monthly activity:\n")
	for i, m := range v.Timeline.Months {
		fmt.Fprintf(&b, "  %s  campaigns=%-5d canvases=%d\n",
			m, v.Timeline.Campaign[i], v.Timeline.Canvas[i])
	}

	if v.EightyPercentRank > 0 {
		fmt.Fprintf(&b, "\n80%% of references come from the top %d of %d fields.\n",
			v.EightyPercentRank, len(v.Pareto))
	}
	return b.String()
}

func formatStatusHuman(v *StatusResponseCLI) string {
	var b strings.Builder

	fmt.Fprintf(&b, "govlens v%s\n", v.Version)
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "Session:     %s\n", v.SessionID)
	fmt.Fprintf(&b, "Data source: %s\n", v.DataSource)
	if v.RefreshedAt != "" {
		fmt.Fprintf(&b, "Last refresh (UTC): %s\n", v.RefreshedAt)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Catalog fields:   %d\n", v.CatalogFields)
	fmt.Fprintf(&b, "Assets:           %d\n", v.Assets)
	fmt.Fprintf(&b, "References:       %d (%d unresolved)\n", v.References, v.UnresolvedRefs)
	fmt.Fprintf(&b, "Dependencies:     %d\n", v.Dependencies)
	fmt.Fprintf(&b, "Indexed blocks:   %d (from %d rows)\n", v.IndexedBlocks, v.BlockRows)
	if v.SkippedRows > 0 {
		fmt.Fprintf(&b, "Skipped rows:     %d\n", v.SkippedRows)
	}
	return b.String()
}
