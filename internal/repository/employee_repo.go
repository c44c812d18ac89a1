package repository

import (
	"context"

	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/store"
)

// employeeRepo is the in-memory implementation of EmployeeRepository.
// The roster is seeded and immutable in this build.
type employeeRepo struct {
	store *store.Store
}

// NewEmployeeRepo creates a new employee repository
func NewEmployeeRepo(s *store.Store) EmployeeRepository {
	return &employeeRepo{store: s}
}

// GetAll returns the fixed roster
func (r *employeeRepo) GetAll(ctx context.Context) ([]models.Employee, error) {
	return r.store.Employees(), nil
}
