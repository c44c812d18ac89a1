package repository

import (
	"context"

	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/store"
)

// ActivityRepository defines the interface for internal activity data
// operations. The in-memory implementation never fails, but callers
// always branch on the error so a real backend can be substituted.
type ActivityRepository interface {
	GetAll(ctx context.Context) ([]models.InternalActivity, error)
	Create(ctx context.Context, name string) (models.InternalActivity, error)
	Update(ctx context.Context, id string, update models.ActivityUpdate) (*models.InternalActivity, error)
	Delete(ctx context.Context, id string) error
}

// WeekRepository defines the interface for timesheet week data operations
type WeekRepository interface {
	GetAll(ctx context.Context) ([]models.TimesheetWeek, error)
	GetByID(ctx context.Context, id string) (*models.TimesheetWeek, error)
	Create(ctx context.Context, employeeID, weekStart string, entries []models.EntryInput, notes string) (models.TimesheetWeek, error)
	Update(ctx context.Context, id string, entries []models.EntryInput, notes string) (*models.TimesheetWeek, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeRepository defines the interface for roster reads
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]models.Employee, error)
}

// ProjectRepository defines the interface for the fixed CRM project
// catalog (deal/pitch/idea). Internal projects are derived elsewhere.
type ProjectRepository interface {
	GetCatalog(ctx context.Context) (map[string][]models.Project, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Activity ActivityRepository
	Week     WeekRepository
	Employee EmployeeRepository
	Project  ProjectRepository
}

// New creates all repositories backed by the given store
func New(s *store.Store) *Repositories {
	return &Repositories{
		Activity: NewActivityRepo(s),
		Week:     NewWeekRepo(s),
		Employee: NewEmployeeRepo(s),
		Project:  NewProjectRepo(s),
	}
}
