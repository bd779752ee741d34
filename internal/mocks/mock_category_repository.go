package mocks

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockCategoryRepository implements domain.CategoryRepository interface for testing
type MockCategoryRepository struct {
	ListFunc       func(ctx context.Context) ([]domain.Category, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Category, error)
	CreateFunc     func(ctx context.Context, category *domain.Category) error
	UpdateFunc     func(ctx context.Context, category *domain.Category) error
	DeactivateFunc func(ctx context.Context, id uint) error
	SearchFunc     func(ctx context.Context, name string) ([]domain.Category, error)
	NameExistsFunc func(ctx context.Context, name string) (bool, error)
	NameTakenFunc  func(ctx context.Context, name string, excludeID uint) (bool, error)
}

// NewMockCategoryRepository creates a new MockCategoryRepository with default behaviors
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

// List returns all categories
func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return []domain.Category{}, nil
}

// FindByID finds a category by ID
func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrCategoryNotFound
}

// Create creates a new category
func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	// Default behavior: success
	return nil
}

// Update updates an existing category
func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	// Default behavior: success
	return nil
}

// Deactivate marks a category inactive
func (m *MockCategoryRepository) Deactivate(ctx context.Context, id uint) error {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Search returns categories whose name contains the given text
func (m *MockCategoryRepository) Search(ctx context.Context, name string) ([]domain.Category, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, name)
	}
	// Default behavior: no matches
	return []domain.Category{}, nil
}

// NameExists reports whether the exact name already exists
func (m *MockCategoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	if m.NameExistsFunc != nil {
		return m.NameExistsFunc(ctx, name)
	}
	// Default behavior: available
	return false, nil
}

// NameTaken reports whether another category owns the name, ignoring case
func (m *MockCategoryRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	if m.NameTakenFunc != nil {
		return m.NameTakenFunc(ctx, name, excludeID)
	}
	// Default behavior: available
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.CategoryRepository = (*MockCategoryRepository)(nil)
