package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"govlens/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage govlens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run:   runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .govlens/config.json",
	Run:   runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	root := mustGetRoot()

	cfg, err := config.LoadConfig(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	output, err := FormatResponse(cfg, FormatJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	root := mustGetRoot()

	cfg := config.DefaultConfig()
	if err := cfg.Save(root); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Wrote .govlens/config.json")
}
