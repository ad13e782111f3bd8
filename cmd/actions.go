package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/golcg/internal/action"
	"github.com/alexiusacademia/golcg/internal/project"
	"github.com/spf13/cobra"
)

var actionsProject string

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the declared actions of a project",
	Long: `List every action of a project file grouped by family, with its
combination factors, partial safety factors and relationships.

Examples:
  golcg actions --project bridge.yaml`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	actionsCmd.Flags().StringVarP(&actionsProject, "project", "p", "", "Project file (YAML) [required]")
	actionsCmd.MarkFlagRequired("project")
}

func runActions(cmd *cobra.Command, args []string) error {
	proj, err := project.Load(actionsProject)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     DECLARED ACTIONS - %s\n", proj.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")

	for _, family := range action.Families {
		members := proj.Registry.ByFamily(family)
		if len(members) == 0 {
			continue
		}
		fmt.Println()
		fmt.Printf("%s ACTIONS:\n", strings.ToUpper(family.String()))
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Name\tψ0\tψ1\tψ2\tγ_fav\tγ_unfav\tRelations\tDescription")
		for _, a := range members {
			var relations []string
			if dep := a.DependsOn(); dep != "" {
				relations = append(relations, "depends on "+dep)
			}
			for _, pattern := range a.IncompatiblePatterns() {
				relations = append(relations, "incompatible with /"+pattern+"/")
			}
			if a.NotDeterminant {
				relations = append(relations, "not determinant")
			}
			cf := a.CombinationFactors
			uls := a.PartialSafetyFactors.ULS
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\n",
				a.Name, cf.Psi0, cf.Psi1, cf.Psi2,
				uls.Favorable, uls.Unfavorable,
				strings.Join(relations, ", "), a.Description)
		}
		w.Flush()
	}
	fmt.Println()
	return nil
}
