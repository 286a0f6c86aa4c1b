package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/paddock/pkg/commands/options"
	"tableflip.dev/paddock/pkg/runner/inbox"
)

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	unread := false

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the notification history, newest first.",
		Example: `
paddock history
paddock history --unread
paddock history read --id 171dff69 --show-id
paddock history read --all
paddock history remove --id 171dff69
paddock history clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}

			l := inbox.List{
				ShowID:     io.ShowID,
				UnreadOnly: unread,
				Service:    svc,
			}
			return l.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&unread, "unread", false, "Only show unread entries.")

	cmd.AddCommand(newHistoryReadCmd())
	cmd.AddCommand(newHistoryRemoveCmd())
	cmd.AddCommand(newHistoryClearCmd())
	topLevel.AddCommand(cmd)
}

func newHistoryReadCmd() *cobra.Command {
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Mark one entry, or every entry, read.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}

			r := inbox.Read{
				ID:      io.ID,
				All:     all,
				Service: svc,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddIDArgs(cmd, io)
	cmd.Flags().BoolVar(&all, "all", false, "Mark every entry read.")
	return cmd
}

func newHistoryRemoveCmd() *cobra.Command {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove one entry from the history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}

			r := inbox.Remove{
				ID:      io.ID,
				Service: svc,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddIDArgs(cmd, io)
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the whole history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}

			c := inbox.Clear{Service: svc}
			return c.Do(cmd.Context())
		},
	}
	return cmd
}
