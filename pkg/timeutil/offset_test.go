package timeutil

import (
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in        string
		want      time.Duration
		canonical string
	}{
		{"20m", 20 * time.Minute, "20m"},
		{"1h", time.Hour, "1h"},
		{"1h30m", 90 * time.Minute, "1h30m"},
		{"90 minutes", 90 * time.Minute, "1h30m"},
		{"", 20 * time.Minute, "20m"},
	}
	for _, c := range cases {
		got, canonical, err := ParseOffset(c.in)
		if err != nil {
			t.Fatalf("ParseOffset(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseOffset(%q) = %v, want %v", c.in, got, c.want)
		}
		if canonical != c.canonical {
			t.Fatalf("ParseOffset(%q) canonical = %q, want %q", c.in, canonical, c.canonical)
		}
	}
}

func TestParseOffsetRejectsGarbage(t *testing.T) {
	for _, in := range []string{"soon", "-5m", "0s", "20x"} {
		if _, _, err := ParseOffset(in); err == nil {
			t.Fatalf("ParseOffset(%q) should fail", in)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{100 * time.Minute, "1h40m"},
		{26 * time.Hour, "1d2h"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
