package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/estudia/internal/ui/theme"
)

var stressCmd = &cobra.Command{
	Use:     "stress",
	Short:   "Estimate a student's academic stress",
	Example: "  estudia stress --sueno 6 --carga 7 --ansiedad 5",
	RunE: func(cmd *cobra.Command, args []string) error {
		sueno, _ := cmd.Flags().GetInt("sueno")
		carga, _ := cmd.Flags().GetInt("carga")
		ansiedad, _ := cmd.Flags().GetInt("ansiedad")

		_, svc, _, err := newService(false)
		if err != nil {
			return err
		}

		res := svc.ClassifyStress(sueno, carga, ansiedad)
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f  %s\n", res.Score, theme.LevelStyle(res.Label).Render(res.Label))
		if res.Degenerate {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render("no rule fired; showing the neutral score"))
		}
		return nil
	},
}

func init() {
	stressCmd.Flags().Int("sueno", 0, "hours of sleep per night (0-12)")
	stressCmd.Flags().Int("carga", 0, "perceived course load (1-10)")
	stressCmd.Flags().Int("ansiedad", 0, "perceived anxiety (0-10)")

	for _, name := range []string{"sueno", "carga", "ansiedad"} {
		stressCmd.MarkFlagRequired(name)
	}
}
