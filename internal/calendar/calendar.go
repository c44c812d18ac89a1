// Package calendar holds the week-start date rules: every timesheet week
// is anchored on its Monday, serialized as an ISO calendar date so that
// lexicographic ordering matches chronological ordering.
package calendar

import (
	"time"
)

// WeekStartLayout is the wire format for week-start dates
const WeekStartLayout = "2006-01-02"

// firstSelectableMonday anchors the selectable week range
var firstSelectableMonday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

// Week is one selectable calendar week
type Week struct {
	WeekStart string `json:"week_start"`
	Label     string `json:"label"`
}

// MondayOf returns the Monday that starts t's calendar week
func MondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// IsWeekStart reports whether s is a valid ISO date falling on a Monday
func IsWeekStart(s string) bool {
	t, err := time.Parse(WeekStartLayout, s)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Monday
}

// Label renders a week range as "5 Jan – 11 Jan 2026"
func Label(weekStart string) string {
	start, err := time.Parse(WeekStartLayout, weekStart)
	if err != nil {
		return weekStart
	}
	end := start.AddDate(0, 0, 6)
	return start.Format("2 Jan") + " – " + end.Format("2 Jan 2006")
}

// SelectableWeeks returns every week from the first selectable Monday up
// to now's week, most recent first
func SelectableWeeks(now time.Time) []Week {
	currentMonday := MondayOf(now)

	var weeks []Week
	for m := firstSelectableMonday; !m.After(currentMonday); m = m.AddDate(0, 0, 7) {
		ws := m.Format(WeekStartLayout)
		weeks = append(weeks, Week{WeekStart: ws, Label: Label(ws)})
	}

	// Most recent first
	for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
		weeks[i], weeks[j] = weeks[j], weeks[i]
	}
	return weeks
}

// RecentWeekStarts returns the last count week-start dates ending at
// now's week, most recent first
func RecentWeekStarts(now time.Time, count int) []string {
	currentMonday := MondayOf(now)

	starts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		starts = append(starts, currentMonday.AddDate(0, 0, -7*i).Format(WeekStartLayout))
	}
	return starts
}
