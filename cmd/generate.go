package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/golcg/internal/comb"
	"github.com/alexiusacademia/golcg/internal/ec0"
	"github.com/alexiusacademia/golcg/internal/export"
	"github.com/alexiusacademia/golcg/internal/project"
	"github.com/spf13/cobra"
)

var (
	generateProject string
	generateFormat  string
	generateOutput  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the load combinations of a project",
	Long: `Generate the admissible load combinations of every design situation
(characteristic, frequent and quasi-permanent serviceability; persistent,
accidental and seismic ultimate) from a YAML project file.

Output formats:
  xc    - load statements for the XC combination loader (default)
  json  - situation/name/expression mapping for other tooling

Examples:
  # Print the combinations as XC statements
  golcg generate --project bridge.yaml

  # Write them to a JSON file
  golcg generate -p bridge.yaml --format json --output combinations.json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateProject, "project", "p", "", "Project file (YAML) [required]")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "xc", "Output format: xc or json")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: standard output)")

	generateCmd.MarkFlagRequired("project")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	proj, err := project.Load(generateProject)
	if err != nil {
		return err
	}

	results, err := comb.NewEnumerator(proj.Registry, proj.Rules, nil).Generate()
	if err != nil {
		return err
	}

	switch generateFormat {
	case "xc":
		if generateOutput == "" {
			return export.WriteScript(os.Stdout, results)
		}
		if err := export.WriteScriptFile(generateOutput, results); err != nil {
			return err
		}
	case "json":
		if generateOutput == "" {
			return export.WriteJSON(os.Stdout, results)
		}
		if err := export.WriteJSONFile(generateOutput, results); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q (expected xc or json)", generateFormat)
	}

	// Summary when writing to a file
	fmt.Println()
	fmt.Println("COMBINATIONS GENERATED:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	total := 0
	for _, situation := range ec0.Situations {
		n := len(results[situation])
		total += n
		fmt.Fprintf(w, "  %s:\t%d\n", situation, n)
	}
	fmt.Fprintf(w, "  Total:\t%d\n", total)
	w.Flush()
	fmt.Printf("\n  Written to %s\n\n", generateOutput)
	return nil
}
