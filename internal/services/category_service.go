package services

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// CategoryServiceImpl implements domain.CategoryService
type CategoryServiceImpl struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo domain.CategoryRepository) domain.CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

// List implements domain.CategoryService
func (s *CategoryServiceImpl) List(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

// Get implements domain.CategoryService
func (s *CategoryServiceImpl) Get(ctx context.Context, id uint) (*domain.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// Create implements domain.CategoryService. The duplicate-name probe
// on create is an exact match.
func (s *CategoryServiceImpl) Create(ctx context.Context, category *domain.Category) error {
	exists, err := s.categoryRepo.NameExists(ctx, category.Name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateName
	}
	return s.categoryRepo.Create(ctx, category)
}

// Update implements domain.CategoryService. The duplicate-name probe
// on update is case-insensitive and excludes the category itself.
func (s *CategoryServiceImpl) Update(ctx context.Context, id uint, category *domain.Category) error {
	if category.ID != id {
		return domain.ErrIDMismatch
	}
	taken, err := s.categoryRepo.NameTaken(ctx, category.Name, id)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateName
	}
	return s.categoryRepo.Update(ctx, category)
}

// Deactivate implements domain.CategoryService
func (s *CategoryServiceImpl) Deactivate(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Deactivate(ctx, id)
}

// Search implements domain.CategoryService
func (s *CategoryServiceImpl) Search(ctx context.Context, name string) ([]domain.Category, error) {
	return s.categoryRepo.Search(ctx, name)
}
