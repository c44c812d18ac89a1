package repository

import (
	"context"

	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/store"
)

// weekRepo is the in-memory implementation of WeekRepository
type weekRepo struct {
	store *store.Store
}

// NewWeekRepo creates a new week repository
func NewWeekRepo(s *store.Store) WeekRepository {
	return &weekRepo{store: s}
}

// GetAll returns every submitted week, most recent submission first
func (r *weekRepo) GetAll(ctx context.Context) ([]models.TimesheetWeek, error) {
	return r.store.Weeks(), nil
}

// GetByID returns the week with that id; nil when absent
func (r *weekRepo) GetByID(ctx context.Context, id string) (*models.TimesheetWeek, error) {
	return r.store.WeekByID(id), nil
}

// Create adds a new week for the employee and week start
func (r *weekRepo) Create(ctx context.Context, employeeID, weekStart string, entries []models.EntryInput, notes string) (models.TimesheetWeek, error) {
	return r.store.AddWeek(employeeID, weekStart, entries, notes), nil
}

// Update replaces the week's entries and notes wholesale; nil result
// means the id did not resolve
func (r *weekRepo) Update(ctx context.Context, id string, entries []models.EntryInput, notes string) (*models.TimesheetWeek, error) {
	return r.store.UpdateWeek(id, entries, notes), nil
}

// Delete removes the week; a no-op for unknown ids
func (r *weekRepo) Delete(ctx context.Context, id string) error {
	r.store.DeleteWeek(id)
	return nil
}
