package models

import (
	"time"
)

// TimesheetEntry is one (project, hours) allocation within a week
type TimesheetEntry struct {
	ID          string `json:"id"`
	WeekID      string `json:"week_id,omitempty"`
	ProjectType string `json:"project_type"`
	ProjectID   string `json:"project_id"`
	Hours       int    `json:"hours"`
	Notes       string `json:"notes,omitempty"`
}

// Ref returns the entry's project composite key
func (e TimesheetEntry) Ref() ProjectRef {
	return ProjectRef{Type: e.ProjectType, ID: e.ProjectID}
}

// TimesheetWeek is one employee's submitted week. TotalHours is always
// the sum of the entries' hours; the store recomputes it on every write.
type TimesheetWeek struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	WeekStart  string           `json:"week_start"`
	TotalHours int              `json:"total_hours"`
	Notes      string           `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Entries    []TimesheetEntry `json:"entries"`
}

// EntryInput is one entry row of a week submission
type EntryInput struct {
	ProjectType string `json:"project_type"`
	ProjectID   string `json:"project_id"`
	Hours       int    `json:"hours"`
	Notes       string `json:"notes"`
}

// Ref returns the input row's project composite key
func (e EntryInput) Ref() ProjectRef {
	return ProjectRef{Type: e.ProjectType, ID: e.ProjectID}
}

// WeekSubmission is the week-level shape the entry form packages rows
// into. ConfirmUnderForty acknowledges a below-40-hour total; without it
// an under-40 submission is rejected with a confirmation request.
type WeekSubmission struct {
	WeekStart         string       `json:"week_start"`
	Entries           []EntryInput `json:"entries"`
	Notes             string       `json:"notes"`
	ConfirmUnderForty bool         `json:"confirm_under_forty"`
}

// TotalHours sums the submission's entry hours
func (s WeekSubmission) TotalHours() int {
	total := 0
	for _, e := range s.Entries {
		total += e.Hours
	}
	return total
}

// WeekUpdate carries a wholesale edit of an existing week: entries and
// notes are replaced; identity, owner and week start are preserved.
type WeekUpdate struct {
	Entries           []EntryInput `json:"entries"`
	Notes             string       `json:"notes"`
	ConfirmUnderForty bool         `json:"confirm_under_forty"`
}

// TotalHours sums the update's entry hours
func (u WeekUpdate) TotalHours() int {
	total := 0
	for _, e := range u.Entries {
		total += e.Hours
	}
	return total
}

// TeamWeek is a stored week annotated with its resolved employee summary
type TeamWeek struct {
	TimesheetWeek
	Employee EmployeeSummary `json:"employee"`
}

// TeamSummary aggregates a week's submission status across the roster.
// Pending is always TotalEmployees minus Submitted.
type TeamSummary struct {
	WeekStart      string `json:"week_start,omitempty"`
	TotalEmployees int    `json:"total_employees"`
	Submitted      int    `json:"submitted"`
	Pending        int    `json:"pending"`
}

// StandardWeekHours is the full-time week used for the under-40 warning
const StandardWeekHours = 40
