package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/repository"
	"github.com/timesheet-api/internal/validation"
)

// timesheetService is the concrete implementation of TimesheetService
type timesheetService struct {
	repos     *repository.Repositories
	catalog   CatalogService
	employees EmployeeService
	log       zerolog.Logger
}

// newTimesheetService creates a new TimesheetService
func newTimesheetService(repos *repository.Repositories, catalog CatalogService, employees EmployeeService, log zerolog.Logger) *timesheetService {
	return &timesheetService{
		repos:     repos,
		catalog:   catalog,
		employees: employees,
		log:       log.With().Str("service", "timesheet").Logger(),
	}
}

// WeekFor returns the employee's week for the given week start, or nil
// when none has been submitted
func (s *timesheetService) WeekFor(ctx context.Context, weekStart, employeeID string) (*models.TimesheetWeek, error) {
	weeks, err := s.repos.Week.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range weeks {
		if weeks[i].EmployeeID == employeeID && weeks[i].WeekStart == weekStart {
			return &weeks[i], nil
		}
	}
	return nil, nil
}

// GetWeek returns the week with that id, or nil when absent
func (s *timesheetService) GetWeek(ctx context.Context, weekID string) (*models.TimesheetWeek, error) {
	return s.repos.Week.GetByID(ctx, weekID)
}

// History returns the employee's weeks, most recent week-start first
func (s *timesheetService) History(ctx context.Context, employeeID string) ([]models.TimesheetWeek, error) {
	weeks, err := s.repos.Week.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]models.TimesheetWeek, 0, len(weeks))
	for _, w := range weeks {
		if w.EmployeeID == employeeID {
			own = append(own, w)
		}
	}

	// Week starts are ISO dates, so the lexical order is the
	// chronological order
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].WeekStart > own[j].WeekStart
	})
	return own, nil
}

// TeamWeeks returns weeks matching the filters, each annotated with the
// owning employee, plus the submission summary for the filtered set
func (s *timesheetService) TeamWeeks(ctx context.Context, filters TeamFilters) ([]models.TeamWeek, models.TeamSummary, error) {
	weeks, err := s.repos.Week.GetAll(ctx)
	if err != nil {
		return nil, models.TeamSummary{}, err
	}

	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, models.TeamSummary{}, err
	}
	byID := make(map[string]models.Employee, len(roster))
	for _, e := range roster {
		byID[e.ID] = e
	}

	team := make([]models.TeamWeek, 0, len(weeks))
	submitted := make(map[string]struct{})
	for _, w := range weeks {
		if filters.WeekStart != "" && w.WeekStart != filters.WeekStart {
			continue
		}
		if filters.EmployeeID != "" && w.EmployeeID != filters.EmployeeID {
			continue
		}

		emp, ok := byID[w.EmployeeID]
		summary := models.EmployeeSummary{ID: emp.ID, Name: emp.Name, Initials: emp.Initials}
		if !ok {
			summary = models.UnknownEmployee(w.EmployeeID)
		}

		team = append(team, models.TeamWeek{TimesheetWeek: w, Employee: summary})
		submitted[w.EmployeeID] = struct{}{}
	}

	sort.SliceStable(team, func(i, j int) bool {
		return team[i].WeekStart > team[j].WeekStart
	})

	total, err := s.employees.ActiveCount(ctx)
	if err != nil {
		return nil, models.TeamSummary{}, err
	}

	// Pending is the exact difference, even when submitters outside the
	// roster push it negative
	summary := models.TeamSummary{
		WeekStart:      filters.WeekStart,
		TotalEmployees: total,
		Submitted:      len(submitted),
		Pending:        total - len(submitted),
	}
	return team, summary, nil
}

// Submit validates the submission and writes the employee's week for
// its week start. An existing week for the same employee and week start
// is replaced wholesale instead of duplicated; the returned boolean
// reports whether a new week was created.
func (s *timesheetService) Submit(ctx context.Context, employeeID string, sub *models.WeekSubmission) (models.TimesheetWeek, bool, error) {
	if errs := validation.ValidateSubmission(sub, s.resolver(ctx)); len(errs) > 0 {
		return models.TimesheetWeek{}, false, &ValidationFailure{Errors: errs}
	}
	if sub.TotalHours() < models.StandardWeekHours && !sub.ConfirmUnderForty {
		return models.TimesheetWeek{}, false, ErrConfirmationRequired
	}

	existing, err := s.WeekFor(ctx, sub.WeekStart, employeeID)
	if err != nil {
		return models.TimesheetWeek{}, false, err
	}

	if existing != nil {
		updated, err := s.repos.Week.Update(ctx, existing.ID, sub.Entries, sub.Notes)
		if err != nil {
			return models.TimesheetWeek{}, false, err
		}
		if updated == nil {
			return models.TimesheetWeek{}, false, ErrNotFound
		}
		s.log.Info().Str("week_id", updated.ID).Str("employee_id", employeeID).Str("week_start", updated.WeekStart).Int("total_hours", updated.TotalHours).Msg("Week resubmitted")
		return *updated, false, nil
	}

	week, err := s.repos.Week.Create(ctx, employeeID, sub.WeekStart, sub.Entries, sub.Notes)
	if err != nil {
		return models.TimesheetWeek{}, false, err
	}
	s.log.Info().Str("week_id", week.ID).Str("employee_id", employeeID).Str("week_start", week.WeekStart).Int("total_hours", week.TotalHours).Msg("Week submitted")
	return week, true, nil
}

// UpdateWeek replaces an existing week's entries and notes wholesale
func (s *timesheetService) UpdateWeek(ctx context.Context, weekID string, update *models.WeekUpdate) (*models.TimesheetWeek, error) {
	existing, err := s.repos.Week.GetByID(ctx, weekID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	sub := &models.WeekSubmission{WeekStart: existing.WeekStart, Entries: update.Entries, Notes: update.Notes}
	if errs := validation.ValidateSubmission(sub, s.resolver(ctx)); len(errs) > 0 {
		return nil, &ValidationFailure{Errors: errs}
	}
	if update.TotalHours() < models.StandardWeekHours && !update.ConfirmUnderForty {
		return nil, ErrConfirmationRequired
	}

	week, err := s.repos.Week.Update(ctx, weekID, update.Entries, update.Notes)
	if err != nil {
		return nil, err
	}
	if week == nil {
		return nil, ErrNotFound
	}

	s.log.Info().Str("week_id", week.ID).Int("total_hours", week.TotalHours).Msg("Week updated")
	return week, nil
}

// DeleteWeek removes the week with that id
func (s *timesheetService) DeleteWeek(ctx context.Context, weekID string) error {
	existing, err := s.repos.Week.GetByID(ctx, weekID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.repos.Week.Delete(ctx, weekID); err != nil {
		return err
	}
	s.log.Info().Str("week_id", weekID).Msg("Week deleted")
	return nil
}

// resolver adapts the catalog lookup to the validator's callback shape
func (s *timesheetService) resolver(ctx context.Context) validation.ProjectResolver {
	return func(ref models.ProjectRef) bool {
		ok, err := s.catalog.Resolves(ctx, ref)
		if err != nil {
			return false
		}
		return ok
	}
}
