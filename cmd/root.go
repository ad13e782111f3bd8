package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/golcg/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "golcg",
	Short: "Load Combination Generator for structural design",
	Long: `golcg - Go Load Combination Generator

A CLI tool for generating load combinations for structural analysis
according to Eurocode 0 (EN 1990) with the Spanish annex.

This tool helps structural engineers:
  - Declare actions with their combination and partial safety factors
  - Generate the admissible combinations of the six design situations
  - Export them as XC loader statements or JSON
  - Find the governing combination for a set of unfactored effects

Combination generation is deterministic: identical projects always
produce identical names and ordering.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   golcg v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Load Combination Generator                           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for generating structural load combinations")
		fmt.Println("  according to Eurocode 0 (EN 1990, Spanish annex).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Serviceability and ultimate limit state combinations")
		fmt.Println("    • Accidental and seismic design situations")
		fmt.Println("    • Dependency and incompatibility constraints between actions")
		fmt.Println("    • XC script and JSON export")
		fmt.Println("    • Governing combination evaluation and charts")
		fmt.Println()
		fmt.Println("  Use 'golcg --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic output")
}
