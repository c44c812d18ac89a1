package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/repository"
	"github.com/timesheet-api/internal/validation"
)

// activityService is the concrete implementation of ActivityService
type activityService struct {
	repo repository.ActivityRepository
	log  zerolog.Logger
}

// newActivityService creates a new ActivityService
func newActivityService(repo repository.ActivityRepository, log zerolog.Logger) *activityService {
	return &activityService{
		repo: repo,
		log:  log.With().Str("service", "activity").Logger(),
	}
}

// List returns internal activities, filtered down to active ones unless
// includeInactive is set
func (s *activityService) List(ctx context.Context, includeInactive bool) ([]models.InternalActivity, error) {
	activities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if includeInactive {
		return activities, nil
	}

	active := make([]models.InternalActivity, 0, len(activities))
	for _, a := range activities {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active, nil
}

// Create adds an activity after checking the trimmed name is non-empty.
// The store does not validate emptiness; this layer must.
func (s *activityService) Create(ctx context.Context, name string) (models.InternalActivity, error) {
	if err := validation.Required(name, "name"); err != nil {
		return models.InternalActivity{}, &ValidationFailure{Errors: []validation.ValidationError{*err}}
	}

	activity, err := s.repo.Create(ctx, strings.TrimSpace(name))
	if err != nil {
		return models.InternalActivity{}, err
	}

	s.log.Info().Str("activity_id", activity.ID).Str("name", activity.Name).Msg("Internal activity created")
	return activity, nil
}

// Update merges partial fields over an existing activity
func (s *activityService) Update(ctx context.Context, id string, update *models.ActivityUpdate) (*models.InternalActivity, error) {
	if update.Name != nil {
		if err := validation.Required(*update.Name, "name"); err != nil {
			return nil, &ValidationFailure{Errors: []validation.ValidationError{*err}}
		}
	}

	activity, err := s.repo.Update(ctx, id, *update)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrNotFound
	}

	s.log.Info().Str("activity_id", activity.ID).Msg("Internal activity updated")
	return activity, nil
}

// Delete removes an activity. Historical timesheet entries referencing
// it are deliberately left alone; their display degrades to a
// placeholder instead.
func (s *activityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("activity_id", id).Msg("Internal activity deleted")
	return nil
}
