package mocks

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockActivityRepository implements domain.ActivityRepository interface for testing
type MockActivityRepository struct {
	ListFunc         func(ctx context.Context) ([]domain.Activity, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*domain.Activity, error)
	CreateFunc       func(ctx context.Context, activity *domain.Activity) error
	UpdateFunc       func(ctx context.Context, activity *domain.Activity) error
	DeactivateFunc   func(ctx context.Context, id uint) error
	FindPublicFunc   func(ctx context.Context, id uint) (*domain.ActivityPublicView, error)
	SearchFunc       func(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityPublicView, error)
}

// NewMockActivityRepository creates a new MockActivityRepository with default behaviors
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

// List returns all activities
func (m *MockActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return []domain.Activity{}, nil
}

// FindByID finds an activity by ID
func (m *MockActivityRepository) FindByID(ctx context.Context, id uint) (*domain.Activity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrActivityNotFound
}

// Create creates a new activity
func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	// Default behavior: success
	return nil
}

// Update updates an existing activity
func (m *MockActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, activity)
	}
	// Default behavior: success
	return nil
}

// Deactivate marks an activity inactive
func (m *MockActivityRepository) Deactivate(ctx context.Context, id uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// FindPublicByID finds the public projection of an activity
func (m *MockActivityRepository) FindPublicByID(ctx context.Context, id uint) (*domain.ActivityPublicView, error) {
	if m.FindPublicFunc != nil {
		return m.FindPublicFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrActivityNotFound
}

// Search returns public activity views matching the filter
func (m *MockActivityRepository) Search(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityPublicView, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	// Default behavior: no matches
	return []domain.ActivityPublicView{}, nil
}

// Compile-time interface compliance verification
var _ domain.ActivityRepository = (*MockActivityRepository)(nil)
