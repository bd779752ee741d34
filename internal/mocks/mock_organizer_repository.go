package mocks

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockOrganizerRepository implements domain.OrganizerRepository interface for testing
type MockOrganizerRepository struct {
	ListFunc                func(ctx context.Context) ([]domain.Organizer, error)
	ListProfilesFunc        func(ctx context.Context) ([]domain.OrganizerProfile, error)
	FindByUserIDFunc        func(ctx context.Context, userID uint) (*domain.Organizer, error)
	FindProfileByUserIDFunc func(ctx context.Context, userID uint) (*domain.OrganizerProfile, error)
	CreateFunc              func(ctx context.Context, organizer *domain.Organizer) error
	UpdateFunc              func(ctx context.Context, organizer *domain.Organizer) error
	SearchFunc              func(ctx context.Context, filter domain.OrganizerFilter) ([]domain.OrganizerProfile, error)
}

// NewMockOrganizerRepository creates a new MockOrganizerRepository with default behaviors
func NewMockOrganizerRepository() *MockOrganizerRepository {
	return &MockOrganizerRepository{}
}

// List returns all organizers
func (m *MockOrganizerRepository) List(ctx context.Context) ([]domain.Organizer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return []domain.Organizer{}, nil
}

// ListProfiles returns all organizer profiles
func (m *MockOrganizerRepository) ListProfiles(ctx context.Context) ([]domain.OrganizerProfile, error) {
	if m.ListProfilesFunc != nil {
		return m.ListProfilesFunc(ctx)
	}
	// Default behavior: empty
	return []domain.OrganizerProfile{}, nil
}

// FindByUserID finds an organizer by its user ID
func (m *MockOrganizerRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Organizer, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrOrganizerNotFound
}

// FindProfileByUserID finds an organizer profile by its user ID
func (m *MockOrganizerRepository) FindProfileByUserID(ctx context.Context, userID uint) (*domain.OrganizerProfile, error) {
	if m.FindProfileByUserIDFunc != nil {
		return m.FindProfileByUserIDFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrOrganizerNotFound
}

// Create creates a new organizer
func (m *MockOrganizerRepository) Create(ctx context.Context, organizer *domain.Organizer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, organizer)
	}
	// Default behavior: success
	return nil
}

// Update updates an existing organizer together with its user
func (m *MockOrganizerRepository) Update(ctx context.Context, organizer *domain.Organizer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, organizer)
	}
	// Default behavior: success
	return nil
}

// Search returns organizer profiles matching the filter
func (m *MockOrganizerRepository) Search(ctx context.Context, filter domain.OrganizerFilter) ([]domain.OrganizerProfile, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	// Default behavior: no matches
	return []domain.OrganizerProfile{}, nil
}

// Compile-time interface compliance verification
var _ domain.OrganizerRepository = (*MockOrganizerRepository)(nil)
