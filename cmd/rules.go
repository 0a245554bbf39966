package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/estudia/internal/kb"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the loaded knowledge base",
	Long:  "Print the risk rule table, the fuzzy stress variables and rules, and the stress bands as YAML.",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, _ := cmd.Flags().GetBool("table")

		_, svc, _, err := newService(false)
		if err != nil {
			return err
		}
		doc := kb.Build(svc.RiskEngine(), svc.StressSystem(), svc.StressBands())

		if !table {
			return kb.Write(cmd.OutOrStdout(), doc)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-26s  %-64s  %-13s  %s\n", "ID", "Condition", "Level", "Priority")
		fmt.Fprintln(out, strings.Repeat("─", 115))
		for _, r := range doc.Risk.Rules {
			fmt.Fprintf(out, "%-26s  %-64s  %-13s  %d\n", r.ID, r.When, r.Then, r.Priority)
		}
		fmt.Fprintln(out)
		for _, r := range doc.Stress.Rules {
			fmt.Fprintln(out, r)
		}
		fmt.Fprintf(out, "\n%d risk rules, %d stress rules (%s)\n", len(doc.Risk.Rules), len(doc.Stress.Rules), doc.Stress.Method)
		return nil
	},
}

func init() {
	rulesCmd.Flags().Bool("table", false, "print a plain-text table instead of YAML")
}
