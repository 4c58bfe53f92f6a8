package cli

import (
	"github.com/spf13/cobra"
)

type identityRequest struct {
	Competition string `json:"competition"`
	Leader      string `json:"leader"`
	Team        string `json:"team"`
}

func newMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark <competition> <leader> <team>",
		Short: "Mark a participant as present",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := identityRequest{
				Competition: args[0],
				Leader:      args[1],
				Team:        args[2],
			}

			var result Ack
			if err := client.Post("/mark-attendance", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUnmarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmark <competition> <leader> <team>",
		Short: "Mark a participant as absent",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := identityRequest{
				Competition: args[0],
				Leader:      args[1],
				Team:        args[2],
			}

			var result Ack
			if err := client.Post("/remove-attendance", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
