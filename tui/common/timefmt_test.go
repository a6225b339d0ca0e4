package common

import (
	"strings"
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "seconds", at: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes", at: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours", at: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days", at: now.Add(-2 * 24 * time.Hour), want: "2d ago"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeTime(tc.at, now); got != tc.want {
				t.Fatalf("RelativeTime got %q want %q", got, tc.want)
			}
		})
	}
}

func TestRelativeTime_OldDatesGoAbsolute(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	got := RelativeTime(now.Add(-30*24*time.Hour), now)
	if strings.Contains(got, "ago") {
		t.Fatalf("month-old timestamp still relative: %q", got)
	}
}

func TestTruncateLine(t *testing.T) {
	if got := TruncateLine("short", 20); got != "short" {
		t.Fatalf("short line changed: %q", got)
	}
	got := TruncateLine(strings.Repeat("x", 40), 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncated line missing ellipsis: %q", got)
	}
}
