package repository

import (
	"context"

	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/store"
)

// projectRepo is the in-memory implementation of ProjectRepository
type projectRepo struct {
	store *store.Store
}

// NewProjectRepo creates a new project repository
func NewProjectRepo(s *store.Store) ProjectRepository {
	return &projectRepo{store: s}
}

// GetCatalog returns the fixed deal/pitch/idea catalog grouped by type
func (r *projectRepo) GetCatalog(ctx context.Context) (map[string][]models.Project, error) {
	return r.store.CatalogProjects(), nil
}
