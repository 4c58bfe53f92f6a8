package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the attendance workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := client.Download("/export")
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Wrote %d bytes to %s", len(data), outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "Attendance.xlsx", "Output file path")

	return cmd
}
