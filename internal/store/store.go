// Package store holds the in-memory demo data that substitutes for a
// real backend: the internal activity list and the submitted timesheet
// weeks, plus the fixed employee roster and CRM project catalog. All
// mutation goes through it; reads return copies so consumers never
// share the store's slices.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/timesheet-api/internal/models"
)

// Store is the single owner of activity and week records. It is
// constructed once per application session and passed by reference;
// Reset restores the seed state.
type Store struct {
	mu         sync.RWMutex
	activities []models.InternalActivity
	weeks      []models.TimesheetWeek
	employees  []models.Employee
	catalog    map[string][]models.Project
}

// New creates a store populated with the demo seed data
func New() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset discards all records and restores the seed state
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.activities = []models.InternalActivity{
		{ID: "int-1", Name: "Vacaciones", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "int-2", Name: "Baja Médica", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: "int-3", Name: "Business Development", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	s.weeks = nil
	s.employees = []models.Employee{
		{ID: "demo-user-1", Name: "Pablo Montejano", Initials: "PM", Email: "pablo.montejano@azcapital.com", IsActive: true},
		{ID: "demo-user-2", Name: "Ana García", Initials: "AG", Email: "ana.garcia@azcapital.com", IsActive: true},
		{ID: "demo-user-3", Name: "Carlos López", Initials: "CL", Email: "carlos.lopez@azcapital.com", IsActive: true},
	}
	s.catalog = map[string][]models.Project{
		models.ProjectTypeDeal: {
			{ID: "deal-1", Name: "D1 Prueba", Type: models.ProjectTypeDeal, TypeLabel: "Deal", Status: "Active"},
		},
		models.ProjectTypePitch: {
			{ID: "pitch-1", Name: "P1 Prueba", Type: models.ProjectTypePitch, TypeLabel: "Pitch", Status: "Active"},
		},
		models.ProjectTypeIdea: {},
	}
}

// Activities returns all internal activities in insertion order
func (s *Store) Activities() []models.InternalActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InternalActivity, len(s.activities))
	copy(out, s.activities)
	return out
}

// AddInternalActivity appends a new activity with a fresh identifier and
// current timestamps. The name is trimmed; emptiness is the caller's
// concern, not the store's.
func (s *Store) AddInternalActivity(name string) models.InternalActivity {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	activity := models.InternalActivity{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.activities = append(s.activities, activity)
	return activity
}

// UpdateInternalActivity merges the given fields over the activity with
// that id, refreshing the updated timestamp. Returns nil when the id
// does not resolve.
func (s *Store) UpdateInternalActivity(id string, update models.ActivityUpdate) *models.InternalActivity {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.activities[i].Name = strings.TrimSpace(*update.Name)
		}
		if update.IsActive != nil {
			s.activities[i].IsActive = *update.IsActive
		}
		s.activities[i].UpdatedAt = time.Now()
		updated := s.activities[i]
		return &updated
	}
	return nil
}

// DeleteInternalActivity removes the activity with that id if present.
// Historical timesheet entries referencing it are left untouched.
func (s *Store) DeleteInternalActivity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.activities[:0]
	for _, a := range s.activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.activities = kept
}

// Weeks returns all submitted weeks, most recent submission first
func (s *Store) Weeks() []models.TimesheetWeek {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TimesheetWeek, len(s.weeks))
	for i, w := range s.weeks {
		out[i] = copyWeek(w)
	}
	return out
}

// WeekByID returns the week with that id, or nil
func (s *Store) WeekByID(id string) *models.TimesheetWeek {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.weeks {
		if w.ID == id {
			out := copyWeek(w)
			return &out
		}
	}
	return nil
}

// AddWeek creates a week with fresh week and entry identifiers, a total
// computed from the entry hours, and current timestamps. The new week is
// prepended: most-recent-first ordering is a store convention that
// consumers do not re-sort.
func (s *Store) AddWeek(employeeID, weekStart string, entries []models.EntryInput, notes string) models.TimesheetWeek {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	week := models.TimesheetWeek{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		WeekStart:  weekStart,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	week.Entries, week.TotalHours = buildEntries(week.ID, entries)

	s.weeks = append([]models.TimesheetWeek{week}, s.weeks...)
	return copyWeek(week)
}

// UpdateWeek replaces the week's entries wholesale (regenerating entry
// identifiers and recomputing the total) and replaces its notes. The
// week's own identifier, owner and week start are preserved. Returns nil
// when the id does not resolve.
func (s *Store) UpdateWeek(weekID string, entries []models.EntryInput, notes string) *models.TimesheetWeek {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.weeks {
		if s.weeks[i].ID != weekID {
			continue
		}
		s.weeks[i].Entries, s.weeks[i].TotalHours = buildEntries(weekID, entries)
		s.weeks[i].Notes = notes
		s.weeks[i].UpdatedAt = time.Now()
		out := copyWeek(s.weeks[i])
		return &out
	}
	return nil
}

// DeleteWeek removes the week with that id if present
func (s *Store) DeleteWeek(weekID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.weeks[:0]
	for _, w := range s.weeks {
		if w.ID != weekID {
			kept = append(kept, w)
		}
	}
	s.weeks = kept
}

// Employees returns the fixed roster
func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

// CatalogProjects returns the fixed deal/pitch/idea catalog grouped by
// type. The internal subset is not stored here; it is derived from
// active activities by the catalog service.
func (s *Store) CatalogProjects() map[string][]models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]models.Project, len(s.catalog))
	for typ, projects := range s.catalog {
		group := make([]models.Project, len(projects))
		copy(group, projects)
		out[typ] = group
	}
	return out
}

func buildEntries(weekID string, inputs []models.EntryInput) ([]models.TimesheetEntry, int) {
	entries := make([]models.TimesheetEntry, len(inputs))
	total := 0
	for i, in := range inputs {
		entries[i] = models.TimesheetEntry{
			ID:          uuid.New().String(),
			WeekID:      weekID,
			ProjectType: in.ProjectType,
			ProjectID:   in.ProjectID,
			Hours:       in.Hours,
			Notes:       in.Notes,
		}
		total += in.Hours
	}
	return entries, total
}

func copyWeek(w models.TimesheetWeek) models.TimesheetWeek {
	out := w
	out.Entries = make([]models.TimesheetEntry, len(w.Entries))
	copy(out.Entries, w.Entries)
	return out
}
