package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newParticipantsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "participants",
		Short: "List the approved roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/participants"
			if search != "" {
				path += "?q=" + url.QueryEscape(search)
			}

			var result []Participant
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by competition, team, or leader substring")

	return cmd
}
