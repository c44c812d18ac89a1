package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/repository"
)

// TimesheetService defines the interface for week queries and mutations
type TimesheetService interface {
	// WeekFor returns the employee's week for the given week start, or
	// nil without error when no such week exists
	WeekFor(ctx context.Context, weekStart, employeeID string) (*models.TimesheetWeek, error)
	// GetWeek returns the week with that id, or nil when absent
	GetWeek(ctx context.Context, weekID string) (*models.TimesheetWeek, error)
	// History returns all of the employee's weeks, most recent
	// week-start first
	History(ctx context.Context, employeeID string) ([]models.TimesheetWeek, error)
	// TeamWeeks returns weeks matching the filters, annotated with
	// resolved employee summaries, plus the submission summary
	TeamWeeks(ctx context.Context, filters TeamFilters) ([]models.TeamWeek, models.TeamSummary, error)
	// Submit creates the employee's week for the submission's week
	// start, or updates the existing one for that pair. The boolean
	// reports whether a new week was created.
	Submit(ctx context.Context, employeeID string, sub *models.WeekSubmission) (models.TimesheetWeek, bool, error)
	// UpdateWeek replaces an existing week's entries and notes wholesale
	UpdateWeek(ctx context.Context, weekID string, update *models.WeekUpdate) (*models.TimesheetWeek, error)
	// DeleteWeek removes the week with that id
	DeleteWeek(ctx context.Context, weekID string) error
}

// TeamFilters narrows the team view by week start and/or employee
type TeamFilters struct {
	WeekStart  string
	EmployeeID string
}

// ActivityService defines the interface for internal activity management
type ActivityService interface {
	List(ctx context.Context, includeInactive bool) ([]models.InternalActivity, error)
	Create(ctx context.Context, name string) (models.InternalActivity, error)
	Update(ctx context.Context, id string, update *models.ActivityUpdate) (*models.InternalActivity, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService defines the interface for the project catalog: the
// fixed deal/pitch/idea records plus the live-derived internal subset
type CatalogService interface {
	Projects(ctx context.Context) (models.ProjectCatalog, error)
	// Resolves reports whether the composite key addresses a known
	// project in the current catalog
	Resolves(ctx context.Context, ref models.ProjectRef) (bool, error)
}

// EmployeeService defines the interface for roster reads
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	ActiveCount(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Timesheet TimesheetService
	Activity  ActivityService
	Catalog   CatalogService
	Employee  EmployeeService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	catalogSvc := newCatalogService(repos, log)
	employeeSvc := newEmployeeService(repos.Employee)
	timesheetSvc := newTimesheetService(repos, catalogSvc, employeeSvc, log)
	activitySvc := newActivityService(repos.Activity, log)

	return &Services{
		Timesheet: timesheetSvc,
		Activity:  activitySvc,
		Catalog:   catalogSvc,
		Employee:  employeeSvc,
	}
}
