// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/paddock/pkg/timeutil"
)

// NotifyOptions captures the reminder flags for the schedule command.
type NotifyOptions struct {
	Offset     string
	Sound      bool
	Foreground bool
	Denied     bool
	Wait       bool
}

// AddNotifyArgs wires reminder-related flags on the provided command.
func AddNotifyArgs(cmd *cobra.Command, o *NotifyOptions) {
	cmd.Flags().StringVarP(&o.Offset, "offset", "o", timeutil.DefaultOffset,
		"How long before the event start the reminder fires, e.g. 20m or 1h.")
	cmd.Flags().BoolVar(&o.Sound, "sound", false,
		"Force sound on delivery.")
	cmd.Flags().BoolVar(&o.Foreground, "foreground", false,
		"Present the notification even while the app is in the foreground.")
	cmd.Flags().BoolVar(&o.Denied, "simulate-denied", false,
		"Pretend notification permission is denied; entries are recorded as pending.")
	cmd.Flags().BoolVar(&o.Wait, "wait", false,
		"Block until scheduled reminders have fired.")
}
