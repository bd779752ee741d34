package mocks

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockCategoryService implements domain.CategoryService interface for testing
type MockCategoryService struct {
	ListFunc       func(ctx context.Context) ([]domain.Category, error)
	GetFunc        func(ctx context.Context, id uint) (*domain.Category, error)
	CreateFunc     func(ctx context.Context, category *domain.Category) error
	UpdateFunc     func(ctx context.Context, id uint, category *domain.Category) error
	DeactivateFunc func(ctx context.Context, id uint) error
	SearchFunc     func(ctx context.Context, name string) ([]domain.Category, error)
}

// NewMockCategoryService creates a new MockCategoryService with default behaviors
func NewMockCategoryService() *MockCategoryService {
	return &MockCategoryService{}
}

func (m *MockCategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Category{}, nil
}

func (m *MockCategoryService) Get(ctx context.Context, id uint) (*domain.Category, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryService) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryService) Update(ctx context.Context, id uint, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, category)
	}
	return nil
}

func (m *MockCategoryService) Deactivate(ctx context.Context, id uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil
}

func (m *MockCategoryService) Search(ctx context.Context, name string) ([]domain.Category, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, name)
	}
	return []domain.Category{}, nil
}

// Compile-time interface compliance verification
var _ domain.CategoryService = (*MockCategoryService)(nil)
