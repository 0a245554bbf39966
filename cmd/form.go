package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/estudia/internal/form"
)

var formCmd = &cobra.Command{
	Use:       "form [risk|stress]",
	Short:     "Fill in an interactive evaluation form",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(form.ModeRisk), string(form.ModeStress)},
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		mode, err := form.ParseMode(name)
		if err != nil {
			return err
		}

		_, svc, _, err := newService(false)
		if err != nil {
			return err
		}
		return form.Run(mode, svc)
	},
}
