package repository

import (
	"context"

	"github.com/timesheet-api/internal/models"
	"github.com/timesheet-api/internal/store"
)

// activityRepo is the in-memory implementation of ActivityRepository
type activityRepo struct {
	store *store.Store
}

// NewActivityRepo creates a new activity repository
func NewActivityRepo(s *store.Store) ActivityRepository {
	return &activityRepo{store: s}
}

// GetAll returns every activity, active and inactive, in insertion order
func (r *activityRepo) GetAll(ctx context.Context) ([]models.InternalActivity, error) {
	return r.store.Activities(), nil
}

// Create adds an activity with the given name
func (r *activityRepo) Create(ctx context.Context, name string) (models.InternalActivity, error) {
	return r.store.AddInternalActivity(name), nil
}

// Update merges partial fields over the activity; nil result means the
// id did not resolve
func (r *activityRepo) Update(ctx context.Context, id string, update models.ActivityUpdate) (*models.InternalActivity, error) {
	return r.store.UpdateInternalActivity(id, update), nil
}

// Delete removes the activity; a no-op for unknown ids
func (r *activityRepo) Delete(ctx context.Context, id string) error {
	r.store.DeleteInternalActivity(id)
	return nil
}
