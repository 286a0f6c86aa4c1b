package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/paddock/pkg/runner/cancel"
)

func addCancel(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cancel <id>...",
		Short: "Cancel scheduled reminders by experience id.",
		Example: `
paddock cancel 7
paddock cancel 7 12 40
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, err := strconv.ParseInt(a, 10, 64)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			svc, err := loadService()
			if err != nil {
				return err
			}

			c := cancel.Cancel{
				IDs:     ids,
				Service: svc,
			}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
