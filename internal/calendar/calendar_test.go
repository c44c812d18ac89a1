package calendar

import (
	"testing"
	"time"
)

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2026, 2, 2, 15, 30, 0, 0, time.UTC), "2026-02-02"},
		{"wednesday maps back", time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), "2026-02-02"},
		{"sunday maps to preceding monday", time.Date(2026, 2, 8, 23, 59, 0, 0, time.UTC), "2026-02-02"},
		{"saturday maps back", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC), "2026-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MondayOf(tt.in).Format(WeekStartLayout)
			if got != tt.want {
				t.Errorf("MondayOf(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsWeekStart(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"2026-01-05", true},
		{"2026-02-02", true},
		{"2026-01-06", false}, // Tuesday
		{"2026-01-04", false}, // Sunday
		{"not-a-date", false},
		{"", false},
		{"2026-1-5", false}, // wrong layout
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsWeekStart(tt.in); got != tt.valid {
				t.Errorf("IsWeekStart(%q) = %v, want %v", tt.in, got, tt.valid)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	if got := Label("2026-01-05"); got != "5 Jan – 11 Jan 2026" {
		t.Errorf("Label = %q, want \"5 Jan – 11 Jan 2026\"", got)
	}
	// Unparseable input falls back to the raw string
	if got := Label("garbage"); got != "garbage" {
		t.Errorf("Label(\"garbage\") = %q", got)
	}
}

func TestSelectableWeeks(t *testing.T) {
	// Three weeks into the range
	now := time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC) // Wed of week 2026-01-19
	weeks := SelectableWeeks(now)

	if len(weeks) != 3 {
		t.Fatalf("Expected 3 weeks, got %d", len(weeks))
	}
	// Most recent first
	if weeks[0].WeekStart != "2026-01-19" {
		t.Errorf("Expected first week 2026-01-19, got %s", weeks[0].WeekStart)
	}
	if weeks[2].WeekStart != "2026-01-05" {
		t.Errorf("Expected last week 2026-01-05, got %s", weeks[2].WeekStart)
	}
}

func TestRecentWeekStarts(t *testing.T) {
	now := time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)
	starts := RecentWeekStarts(now, 3)

	want := []string{"2026-02-02", "2026-01-26", "2026-01-19"}
	if len(starts) != len(want) {
		t.Fatalf("Expected %d starts, got %d", len(want), len(starts))
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("starts[%d] = %s, want %s", i, starts[i], want[i])
		}
	}
}
