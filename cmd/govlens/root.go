package main

import (
	"strings"

	"github.com/spf13/cobra"

	"govlens/internal/period"
	"govlens/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "govlens",
	Short: "govlens - catalog governance analytics",
	Long: `govlens analyzes a messaging-platform content catalog: it joins field
references against their owning assets, filters by a named activity period,
and reports KPIs, ranked field usage, and governance insights.

Activity periods:
  ` + strings.Join(period.Labels, "\n  "),
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("govlens version {{.Version}}\n")
}
