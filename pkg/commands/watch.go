package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/paddock/pkg/runner/watch"
	"tableflip.dev/paddock/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the store for schedule and history changes.",
		Example: `
paddock watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := store.Open(nil)
			if err != nil {
				return err
			}

			w := watch.Watch{KV: kv}
			return w.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
