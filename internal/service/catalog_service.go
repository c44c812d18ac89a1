package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/repository"
)

// catalogService is the concrete implementation of CatalogService
type catalogService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newCatalogService creates a new CatalogService
func newCatalogService(repos *repository.Repositories, log zerolog.Logger) *catalogService {
	return &catalogService{
		repos: repos,
		log:   log.With().Str("service", "catalog").Logger(),
	}
}

// Projects returns the full catalog: fixed deal/pitch/idea records plus
// the internal subset derived live from active internal activities.
// Exposed flat and grouped by type for selection UIs.
func (s *catalogService) Projects(ctx context.Context) (models.ProjectCatalog, error) {
	fixed, err := s.repos.Project.GetCatalog(ctx)
	if err != nil {
		return models.ProjectCatalog{}, err
	}

	activities, err := s.repos.Activity.GetAll(ctx)
	if err != nil {
		return models.ProjectCatalog{}, err
	}

	internal := make([]models.Project, 0, len(activities))
	for _, a := range activities {
		if !a.IsActive {
			continue
		}
		internal = append(internal, models.Project{
			ID:        a.ID,
			Name:      a.Name,
			Type:      models.ProjectTypeInternal,
			TypeLabel: models.ProjectTypeLabels[models.ProjectTypeInternal],
		})
	}

	grouped := map[string][]models.Project{
		models.ProjectTypeDeal:     fixed[models.ProjectTypeDeal],
		models.ProjectTypePitch:    fixed[models.ProjectTypePitch],
		models.ProjectTypeIdea:     fixed[models.ProjectTypeIdea],
		models.ProjectTypeInternal: internal,
	}

	var all []models.Project
	for _, typ := range models.ProjectTypeOrder {
		all = append(all, grouped[typ]...)
	}

	return models.ProjectCatalog{All: all, Grouped: grouped}, nil
}

// Resolves reports whether the composite key addresses a project in the
// current catalog. Inactive internal activities do not resolve for new
// submissions; historical entries referencing them degrade to a
// placeholder display instead.
func (s *catalogService) Resolves(ctx context.Context, ref models.ProjectRef) (bool, error) {
	catalog, err := s.Projects(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range catalog.Grouped[ref.Type] {
		if p.ID == ref.ID {
			return true, nil
		}
	}
	return false, nil
}
