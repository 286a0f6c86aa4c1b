package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/paddock/pkg/app"
	"tableflip.dev/paddock/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "paddock",
		Short: base.Wrap80("Event reminders for your race weekend, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSchedule(topLevel)
	addCancel(topLevel)
	addUpcoming(topLevel)
	addHistory(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// loadService opens the configured store and assembles the app facade with
// the in-process scheduler.
func loadService() (*app.Service, error) {
	kv, err := store.Open(nil)
	if err != nil {
		return nil, err
	}
	return app.New(kv, nil)
}
