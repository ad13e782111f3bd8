package cmd

import (
	"fmt"

	"github.com/alexiusacademia/golcg/internal/comb"
	"github.com/alexiusacademia/golcg/internal/diagram"
	"github.com/alexiusacademia/golcg/internal/ec0"
	"github.com/alexiusacademia/golcg/internal/project"
	"github.com/spf13/cobra"
)

var (
	governProject   string
	governSituation string
	governUnit      string
	governChart     string
)

var governCmd = &cobra.Command{
	Use:   "govern",
	Short: "Find the governing combination for a set of effects",
	Long: `Combine the unfactored effect values of the project file (one value per
action, e.g. midspan moments from unit load cases) with every generated
combination of a design situation, and report the governing one.

Examples:
  # Governing ultimate combination
  golcg govern --project bridge.yaml --situation ULSTransient

  # Frequent serviceability check with a chart image
  golcg govern -p bridge.yaml -s SLSFrequent --chart effects.png`,
	RunE: runGovern,
}

func init() {
	rootCmd.AddCommand(governCmd)

	governCmd.Flags().StringVarP(&governProject, "project", "p", "", "Project file (YAML) [required]")
	governCmd.Flags().StringVarP(&governSituation, "situation", "s", "ULSTransient", "Design situation")
	governCmd.Flags().StringVarP(&governUnit, "unit", "u", "kN-m", "Unit label for effect values")
	governCmd.Flags().StringVar(&governChart, "chart", "", "Export a bar chart image (png, svg or pdf)")

	governCmd.MarkFlagRequired("project")
}

func runGovern(cmd *cobra.Command, args []string) error {
	proj, err := project.Load(governProject)
	if err != nil {
		return err
	}
	if len(proj.Effects) == 0 {
		return fmt.Errorf("project file declares no effect values (add an 'effects' section)")
	}
	situation, err := ec0.ParseSituation(governSituation)
	if err != nil {
		return err
	}

	results, err := comb.NewEnumerator(proj.Registry, proj.Rules, nil).Generate()
	if err != nil {
		return err
	}
	combinations := results[situation]
	governing, effect, ok := comb.Governing(combinations, proj.Effects)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     GOVERNING COMBINATION - %s\n", situation)
	fmt.Println("═══════════════════════════════════════════════════════════════")

	bars := make([]diagram.EffectBar, len(combinations))
	for i, c := range combinations {
		bars[i] = diagram.EffectBar{
			Name:      c.Name,
			Expr:      c.Expr(),
			Effect:    c.FactoredEffect(proj.Effects),
			Governing: ok && c.Name == governing.Name,
		}
	}
	fmt.Print(diagram.DrawASCIIEffectChart(bars, governUnit))
	fmt.Println()

	if !ok {
		fmt.Println("  No combinations were generated for this situation.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  ╔═════════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  GOVERNING: %s = %.2f %s\n", governing.Name, effect, governUnit)
	fmt.Printf("  ║  %s\n", governing.Expr())
	fmt.Printf("  ╚═════════════════════════════════════════════════════╝\n")
	fmt.Println()

	if governChart != "" {
		title := fmt.Sprintf("%s - %s", proj.Name, situation)
		if err := diagram.ExportEffectChart(bars, title, governUnit, governChart); err != nil {
			return fmt.Errorf("export chart: %w", err)
		}
		fmt.Printf("  Chart written to %s\n\n", governChart)
	}
	return nil
}
