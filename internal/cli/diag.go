package cli

import (
	"github.com/spf13/cobra"
)

func newDiagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diag",
		Short: "Check attendance sheet connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Diagnostics

			if err := client.Get("/test-sheets", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
