package service

import (
	"context"

	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/repository"
)

// employeeService is the concrete implementation of EmployeeService
type employeeService struct {
	repo repository.EmployeeRepository
}

// newEmployeeService creates a new EmployeeService
func newEmployeeService(repo repository.EmployeeRepository) *employeeService {
	return &employeeService{repo: repo}
}

// List returns the fixed roster
func (s *employeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.repo.GetAll(ctx)
}

// ActiveCount returns the number of active employees
func (s *employeeService) ActiveCount(ctx context.Context) (int, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range employees {
		if e.IsActive {
			count++
		}
	}
	return count, nil
}
