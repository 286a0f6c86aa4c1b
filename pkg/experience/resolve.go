package experience

import (
	"time"
)

// Start time strings are accepted in these layouts. Any zone offset in the
// input is parsed and then discarded; see StartInstant.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateLayout = "2006-01-02"

// StartInstant resolves the experience's start into an absolute instant
// read on the device's local wall clock. Event-specific timezone metadata
// is deliberately ignored so the same clock-face time triggers wherever the
// device is. Product decision, confirmed; do not "fix" by honoring zones.
// Returns ok=false when neither time shape parses.
func (x Experience) StartInstant() (time.Time, bool) {
	if x.StartTime != "" {
		for _, layout := range startLayouts {
			if t, err := time.Parse(layout, x.StartTime); err == nil {
				return clockFace(t), true
			}
		}
	}
	if x.Date != "" && x.StartHHMM >= 0 {
		d, err := time.Parse(dateLayout, x.Date)
		if err != nil {
			return time.Time{}, false
		}
		hour := x.StartHHMM / 100
		min := x.StartHHMM % 100
		if hour > 23 || min > 59 {
			return time.Time{}, false
		}
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// clockFace rebuilds t's wall-clock fields in the local zone.
func clockFace(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}

// Trigger is a resolved reminder time. Missed is set when the intended
// offset-before-start time has already passed but the event itself has not
// started yet; callers fire almost immediately instead of not at all.
type Trigger struct {
	FireAt time.Time
	Missed bool
}

// ResolveTrigger computes the trigger for firing offset before the
// experience starts. Returns ok=false when the start time cannot be
// resolved at all.
func ResolveTrigger(x Experience, offset time.Duration, now time.Time) (Trigger, bool) {
	start, ok := x.StartInstant()
	if !ok {
		return Trigger{}, false
	}
	fireAt := start.Add(-offset)
	missed := !fireAt.After(now) && start.After(now)
	return Trigger{FireAt: fireAt, Missed: missed}, true
}

// Delay is the duration from now until the trigger fires. Negative when
// the trigger is already in the past.
func (t Trigger) Delay(now time.Time) time.Duration {
	return t.FireAt.Sub(now)
}
