// Package experience models the schedulable activities supplied by the
// remote schedule provider and resolves their start times into reminder
// trigger instants.
package experience

// Experience is a time-boxed activity with a start time and venue. Records
// are owned by the schedule provider; the engine only reads them. The start
// time arrives in one of two shapes: a full StartTime string, or a Date
// plus a packed HHMM integer (1430 means 14:30).
type Experience struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	Date        string `json:"date,omitempty"`
	StartHHMM   int    `json:"startHHMM,omitempty"`
	VenueName   string `json:"venueName,omitempty"`

	// AutoNotification defaults to true when absent.
	AutoNotification *bool `json:"autoNotificationEnabled,omitempty"`
}

// NotificationsEnabled reports whether reminders should be scheduled for
// this experience.
func (x Experience) NotificationsEnabled() bool {
	return x.AutoNotification == nil || *x.AutoNotification
}
