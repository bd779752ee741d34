package services

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// ActivityServiceImpl implements domain.ActivityService
type ActivityServiceImpl struct {
	activityRepo domain.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo domain.ActivityRepository) domain.ActivityService {
	return &ActivityServiceImpl{activityRepo: activityRepo}
}

// List implements domain.ActivityService
func (s *ActivityServiceImpl) List(ctx context.Context) ([]domain.Activity, error) {
	return s.activityRepo.List(ctx)
}

// Get implements domain.ActivityService
func (s *ActivityServiceImpl) Get(ctx context.Context, id uint) (*domain.Activity, error) {
	return s.activityRepo.FindByID(ctx, id)
}

// Create implements domain.ActivityService
func (s *ActivityServiceImpl) Create(ctx context.Context, activity *domain.Activity) error {
	return s.activityRepo.Create(ctx, activity)
}

// Update implements domain.ActivityService. The body id must match
// the path id.
func (s *ActivityServiceImpl) Update(ctx context.Context, id uint, activity *domain.Activity) error {
	if activity.ID != id {
		return domain.ErrIDMismatch
	}
	return s.activityRepo.Update(ctx, activity)
}

// Deactivate implements domain.ActivityService
func (s *ActivityServiceImpl) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.activityRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.activityRepo.Deactivate(ctx, id)
}

// GetPublic implements domain.ActivityService
func (s *ActivityServiceImpl) GetPublic(ctx context.Context, id uint) (*domain.ActivityPublicView, error) {
	return s.activityRepo.FindPublicByID(ctx, id)
}

// Search implements domain.ActivityService
func (s *ActivityServiceImpl) Search(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityPublicView, error) {
	return s.activityRepo.Search(ctx, filter)
}
