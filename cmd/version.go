package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golcg/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of golcg",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("golcg v%s\n", version.Version)
		fmt.Println("Load Combination Generator")
		fmt.Println("Based on EN 1990 (Eurocode 0) with the Spanish annex")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
