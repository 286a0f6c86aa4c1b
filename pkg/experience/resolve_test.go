package experience

import (
	"testing"
	"time"
)

func TestStartInstantFullTimestamp(t *testing.T) {
	x := Experience{ID: 1, StartTime: "2026-09-05T14:30:00"}
	got, ok := x.StartInstant()
	if !ok {
		t.Fatal("expected start time to resolve")
	}
	want := time.Date(2026, time.September, 5, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStartInstantDiscardsZone(t *testing.T) {
	// The clock-face time wins; the zone offset in the input is ignored so
	// the reminder fires at the same local reading wherever the device is.
	x := Experience{ID: 1, StartTime: "2026-09-05T14:30:00+09:00"}
	got, ok := x.StartInstant()
	if !ok {
		t.Fatal("expected start time to resolve")
	}
	want := time.Date(2026, time.September, 5, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStartInstantPackedHHMM(t *testing.T) {
	x := Experience{ID: 1, Date: "2026-09-05", StartHHMM: 1430}
	got, ok := x.StartInstant()
	if !ok {
		t.Fatal("expected start time to resolve")
	}
	want := time.Date(2026, time.September, 5, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// 930 packs 09:30.
	x = Experience{ID: 1, Date: "2026-09-05", StartHHMM: 930}
	got, ok = x.StartInstant()
	if !ok {
		t.Fatal("expected start time to resolve")
	}
	want = time.Date(2026, time.September, 5, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStartInstantInvalid(t *testing.T) {
	cases := []Experience{
		{ID: 1},
		{ID: 1, StartTime: "not a time"},
		{ID: 1, Date: "not a date", StartHHMM: 1430},
		{ID: 1, Date: "2026-09-05", StartHHMM: 2575},
	}
	for _, x := range cases {
		if _, ok := x.StartInstant(); ok {
			t.Fatalf("expected %+v not to resolve", x)
		}
	}
}

func TestResolveTriggerFutureOffset(t *testing.T) {
	now := time.Date(2026, time.September, 5, 12, 0, 0, 0, time.Local)
	x := Experience{ID: 1, StartTime: "2026-09-05T14:00:00"}

	trig, ok := ResolveTrigger(x, 20*time.Minute, now)
	if !ok {
		t.Fatal("expected trigger to resolve")
	}
	if trig.Missed {
		t.Fatal("trigger should not be missed")
	}
	if got, want := trig.Delay(now), 100*time.Minute; got != want {
		t.Fatalf("expected delay %v, got %v", want, got)
	}
}

func TestResolveTriggerMissedWindow(t *testing.T) {
	// Event in 10 minutes with a 20 minute offset: the window has passed
	// but the event has not, so the caller fires promptly instead of never.
	now := time.Date(2026, time.September, 5, 12, 0, 0, 0, time.Local)
	x := Experience{ID: 1, StartTime: "2026-09-05T12:10:00"}

	trig, ok := ResolveTrigger(x, 20*time.Minute, now)
	if !ok {
		t.Fatal("expected trigger to resolve")
	}
	if !trig.Missed {
		t.Fatal("expected missed window")
	}
	if trig.Delay(now) >= 0 {
		t.Fatal("literal delay should be negative on the missed path")
	}
}

func TestResolveTriggerPastEvent(t *testing.T) {
	now := time.Date(2026, time.September, 5, 12, 0, 0, 0, time.Local)
	x := Experience{ID: 1, StartTime: "2026-09-05T11:00:00"}

	trig, ok := ResolveTrigger(x, 20*time.Minute, now)
	if !ok {
		t.Fatal("expected trigger to resolve")
	}
	if trig.Missed {
		t.Fatal("a past event is not a missed window")
	}
	if trig.Delay(now) >= 0 {
		t.Fatal("expected negative delay for past event")
	}
}

func TestNotificationsEnabledDefaultsTrue(t *testing.T) {
	if !(Experience{ID: 1}).NotificationsEnabled() {
		t.Fatal("expected notifications enabled by default")
	}
	off := false
	if (Experience{ID: 1, AutoNotification: &off}).NotificationsEnabled() {
		t.Fatal("expected notifications disabled")
	}
}
