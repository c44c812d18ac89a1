// Package form models the timesheet entry form as a pure draft: rows of
// (project, hours, notes) that are edited in place and packaged into a
// week submission. No storage or transport concerns live here.
package form

import (
	"github.com/timesheet-api/internal/models"
)

// State describes how far along a draft is
type State string

const (
	// StateEmpty means the draft has no rows yet
	StateEmpty State = "empty"
	// StateEditing means rows exist but at least one is incomplete
	StateEditing State = "editing"
	// StateReady means every row has a project and positive integer hours
	StateReady State = "ready"
)

// Row is one editable entry line
type Row struct {
	Project *models.ProjectRef
	Hours   int
	Notes   string
}

// complete reports whether the row counts toward readiness: a resolved
// project reference and a positive integer hours value. Notes are
// always optional.
func (r Row) complete() bool {
	return r.Project != nil && r.Hours > 0
}

// Draft is the in-progress form for one week. ExistingWeekID is set
// when editing an already-submitted week.
type Draft struct {
	WeekStart      string
	ExistingWeekID string
	Rows           []Row
	Notes          string
}

// New creates an empty draft for the given week start
func New(weekStart string) *Draft {
	return &Draft{WeekStart: weekStart}
}

// FromWeek creates a draft prefilled from an existing week for editing
func FromWeek(week models.TimesheetWeek) *Draft {
	d := &Draft{
		WeekStart:      week.WeekStart,
		ExistingWeekID: week.ID,
		Notes:          week.Notes,
		Rows:           make([]Row, len(week.Entries)),
	}
	for i, e := range week.Entries {
		ref := e.Ref()
		d.Rows[i] = Row{Project: &ref, Hours: e.Hours, Notes: e.Notes}
	}
	return d
}

// AddRow appends a blank entry row
func (d *Draft) AddRow() {
	d.Rows = append(d.Rows, Row{})
}

// RemoveRow deletes the row at that position; out-of-range is a no-op
func (d *Draft) RemoveRow(index int) {
	if index < 0 || index >= len(d.Rows) {
		return
	}
	d.Rows = append(d.Rows[:index], d.Rows[index+1:]...)
}

// SetProject sets or clears the row's project reference
func (d *Draft) SetProject(index int, ref *models.ProjectRef) {
	if index < 0 || index >= len(d.Rows) {
		return
	}
	d.Rows[index].Project = ref
}

// SetHours sets the row's hours value
func (d *Draft) SetHours(index, hours int) {
	if index < 0 || index >= len(d.Rows) {
		return
	}
	d.Rows[index].Hours = hours
}

// SetRowNotes sets the row's optional notes
func (d *Draft) SetRowNotes(index int, notes string) {
	if index < 0 || index >= len(d.Rows) {
		return
	}
	d.Rows[index].Notes = notes
}

// TotalHours sums all row hours
func (d *Draft) TotalHours() int {
	total := 0
	for _, r := range d.Rows {
		total += r.Hours
	}
	return total
}

// State derives the draft's current state
func (d *Draft) State() State {
	if len(d.Rows) == 0 {
		return StateEmpty
	}
	for _, r := range d.Rows {
		if !r.complete() {
			return StateEditing
		}
	}
	if d.WeekStart == "" {
		return StateEditing
	}
	return StateReady
}

// CanSubmit reports whether the draft is ready to be packaged
func (d *Draft) CanSubmit() bool {
	return d.State() == StateReady
}

// NeedsConfirmation reports whether submitting requires the explicit
// under-40 acknowledgment: true for totals in [1, 40)
func (d *Draft) NeedsConfirmation() bool {
	total := d.TotalHours()
	return total > 0 && total < models.StandardWeekHours
}

// CandidatesFor filters the catalog down to the projects selectable in
// the given row: a project chosen in any other row is excluded, which
// prevents duplicate project rows within one week. The row's own
// selection stays selectable.
func (d *Draft) CandidatesFor(index int, catalog []models.Project) []models.Project {
	taken := make(map[string]bool)
	for i, r := range d.Rows {
		if i == index || r.Project == nil {
			continue
		}
		taken[r.Project.Key()] = true
	}

	candidates := make([]models.Project, 0, len(catalog))
	for _, p := range catalog {
		if !taken[p.Ref().Key()] {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// Build packages all rows into the week-level submission shape
func (d *Draft) Build(confirmUnderForty bool) models.WeekSubmission {
	entries := make([]models.EntryInput, 0, len(d.Rows))
	for _, r := range d.Rows {
		if r.Project == nil {
			continue
		}
		entries = append(entries, models.EntryInput{
			ProjectType: r.Project.Type,
			ProjectID:   r.Project.ID,
			Hours:       r.Hours,
			Notes:       r.Notes,
		})
	}
	return models.WeekSubmission{
		WeekStart:         d.WeekStart,
		Entries:           entries,
		Notes:             d.Notes,
		ConfirmUnderForty: confirmUnderForty,
	}
}
