package mocks

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockActivityService implements domain.ActivityService interface for testing
type MockActivityService struct {
	ListFunc       func(ctx context.Context) ([]domain.Activity, error)
	GetFunc        func(ctx context.Context, id uint) (*domain.Activity, error)
	CreateFunc     func(ctx context.Context, activity *domain.Activity) error
	UpdateFunc     func(ctx context.Context, id uint, activity *domain.Activity) error
	DeactivateFunc func(ctx context.Context, id uint) error
	GetPublicFunc  func(ctx context.Context, id uint) (*domain.ActivityPublicView, error)
	SearchFunc     func(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityPublicView, error)
}

// NewMockActivityService creates a new MockActivityService with default behaviors
func NewMockActivityService() *MockActivityService {
	return &MockActivityService{}
}

func (m *MockActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Activity{}, nil
}

func (m *MockActivityService) Get(ctx context.Context, id uint) (*domain.Activity, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrActivityNotFound
}

func (m *MockActivityService) Create(ctx context.Context, activity *domain.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityService) Update(ctx context.Context, id uint, activity *domain.Activity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, activity)
	}
	return nil
}

func (m *MockActivityService) Deactivate(ctx context.Context, id uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockActivityService) GetPublic(ctx context.Context, id uint) (*domain.ActivityPublicView, error) {
	if m.GetPublicFunc != nil {
		return m.GetPublicFunc(ctx, id)
	}
	return nil, domain.ErrActivityNotFound
}

func (m *MockActivityService) Search(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityPublicView, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return []domain.ActivityPublicView{}, nil
}

// Compile-time interface compliance verification
var _ domain.ActivityService = (*MockActivityService)(nil)
