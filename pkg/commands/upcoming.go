package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/paddock/pkg/runner/upcoming"
)

func addUpcoming(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "upcoming",
		Short:   "List scheduled reminders with countdowns.",
		Aliases: []string{"up"},
		Example: `
paddock upcoming
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}

			u := upcoming.Upcoming{Service: svc}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
