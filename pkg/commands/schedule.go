package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/paddock/pkg/commands/options"
	"tableflip.dev/paddock/pkg/notify"
	"tableflip.dev/paddock/pkg/runner/schedule"
	"tableflip.dev/paddock/pkg/timeutil"
)

func addSchedule(topLevel *cobra.Command) {
	no := &options.NotifyOptions{}

	var file string

	cmd := &cobra.Command{
		Use:   "schedule [file]",
		Short: "Schedule reminders for an experience list.",
		Long: "Schedule reminders for a JSON list of experiences. Reads the " +
			"file argument, or stdin when the argument is - or absent.",
		Example: `
paddock schedule weekend.json
paddock schedule weekend.json --offset 1h
cat weekend.json | paddock schedule --wait
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				file = args[0]
			}

			offset, _, err := timeutil.ParseOffset(no.Offset)
			if err != nil {
				return err
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			if no.Denied {
				if local, ok := svc.Scheduler.(*notify.Local); ok {
					local.SetPermission(notify.PermissionDenied)
				}
			}

			s := schedule.Schedule{
				Path:       file,
				Offset:     offset,
				Sound:      no.Sound,
				Foreground: no.Foreground,
				Wait:       no.Wait,
				Service:    svc,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddNotifyArgs(cmd, no)

	topLevel.AddCommand(cmd)
}
