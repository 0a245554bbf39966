package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/estudia/internal/ui/theme"
)

var riskCmd = &cobra.Command{
	Use:     "risk",
	Short:   "Classify a student's academic risk",
	Example: "  estudia risk --promedio 3.5 --inasistencias 4 --participacion 10 --horas-estudio 6",
	RunE: func(cmd *cobra.Command, args []string) error {
		promedio, _ := cmd.Flags().GetFloat64("promedio")
		inasistencias, _ := cmd.Flags().GetInt("inasistencias")
		participacion, _ := cmd.Flags().GetInt("participacion")
		horas, _ := cmd.Flags().GetFloat64("horas-estudio")

		_, svc, _, err := newService(false)
		if err != nil {
			return err
		}

		nivel := svc.ClassifyRisk(promedio, inasistencias, participacion, horas)
		fmt.Fprintln(cmd.OutOrStdout(), theme.LevelStyle(nivel).Render(nivel))
		return nil
	},
}

func init() {
	riskCmd.Flags().Float64("promedio", 0, "grade average (0-5)")
	riskCmd.Flags().Int("inasistencias", 0, "number of absences")
	riskCmd.Flags().Int("participacion", 0, "participation count")
	riskCmd.Flags().Float64("horas-estudio", 0, "weekly study hours")

	for _, name := range []string{"promedio", "inasistencias", "participacion", "horas-estudio"} {
		riskCmd.MarkFlagRequired(name)
	}
}
