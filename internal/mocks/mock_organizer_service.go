package mocks

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockOrganizerService implements domain.OrganizerService interface for testing
type MockOrganizerService struct {
	ListFunc         func(ctx context.Context) ([]domain.Organizer, error)
	ListProfilesFunc func(ctx context.Context) ([]domain.OrganizerProfile, error)
	GetFunc          func(ctx context.Context, userID uint) (*domain.OrganizerProfile, error)
	CreateFunc       func(ctx context.Context, req domain.OrganizerCreate) (string, error)
	UpdateFunc       func(ctx context.Context, userID uint, patch domain.OrganizerPatch) error
	DeactivateFunc   func(ctx context.Context, userID uint) error
	SearchFunc       func(ctx context.Context, filter domain.OrganizerFilter) ([]domain.OrganizerProfile, error)
}

// NewMockOrganizerService creates a new MockOrganizerService with default behaviors
func NewMockOrganizerService() *MockOrganizerService {
	return &MockOrganizerService{}
}

func (m *MockOrganizerService) List(ctx context.Context) ([]domain.Organizer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Organizer{}, nil
}

func (m *MockOrganizerService) ListProfiles(ctx context.Context) ([]domain.OrganizerProfile, error) {
	if m.ListProfilesFunc != nil {
		return m.ListProfilesFunc(ctx)
	}
	return []domain.OrganizerProfile{}, nil
}

func (m *MockOrganizerService) Get(ctx context.Context, userID uint) (*domain.OrganizerProfile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, domain.ErrOrganizerNotFound
}

func (m *MockOrganizerService) Create(ctx context.Context, req domain.OrganizerCreate) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return "password123", nil
}

func (m *MockOrganizerService) Update(ctx context.Context, userID uint, patch domain.OrganizerPatch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, patch)
	}
	return nil
}

func (m *MockOrganizerService) Deactivate(ctx context.Context, userID uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, userID)
	}
	return nil
}

func (m *MockOrganizerService) Search(ctx context.Context, filter domain.OrganizerFilter) ([]domain.OrganizerProfile, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return []domain.OrganizerProfile{}, nil
}

// Compile-time interface compliance verification
var _ domain.OrganizerService = (*MockOrganizerService)(nil)
