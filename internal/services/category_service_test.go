package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
	"github.com/SecondHemisphere/api-portal-actividades/internal/mocks"
)

func TestCategoryServiceImpl_Create(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository()
		var created *domain.Category
		repo.CreateFunc = func(ctx context.Context, category *domain.Category) error {
			created = category
			return nil
		}

		svc := NewCategoryService(repo)
		if err := svc.Create(context.Background(), &domain.Category{Name: "Deportes", Active: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || created.Name != "Deportes" {
			t.Errorf("category was not persisted: %+v", created)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository()
		repo.NameExistsFunc = func(ctx context.Context, name string) (bool, error) {
			return name == "Deportes", nil
		}

		svc := NewCategoryService(repo)
		err := svc.Create(context.Background(), &domain.Category{Name: "Deportes"})
		if !errors.Is(err, domain.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	// The create-time probe matches exactly: a case variant of an
	// existing name passes.
	t.Run("case variant passes the exact probe", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository()
		repo.NameExistsFunc = func(ctx context.Context, name string) (bool, error) {
			return name == "Deportes", nil
		}

		svc := NewCategoryService(repo)
		if err := svc.Create(context.Background(), &domain.Category{Name: "deportes"}); err != nil {
			t.Errorf("exact-match probe rejected a case variant: %v", err)
		}
	})
}

func TestCategoryServiceImpl_Update(t *testing.T) {
	t.Run("id mismatch", func(t *testing.T) {
		svc := NewCategoryService(mocks.NewMockCategoryRepository())
		err := svc.Update(context.Background(), 5, &domain.Category{ID: 6, Name: "Arte"})
		if !errors.Is(err, domain.ErrIDMismatch) {
			t.Errorf("expected ErrIDMismatch, got %v", err)
		}
	})

	t.Run("duplicate name excluding self", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository()
		repo.NameTakenFunc = func(ctx context.Context, name string, excludeID uint) (bool, error) {
			if excludeID != 5 {
				t.Errorf("probe must exclude the category itself, got %d", excludeID)
			}
			return true, nil
		}

		svc := NewCategoryService(repo)
		err := svc.Update(context.Background(), 5, &domain.Category{ID: 5, Name: "Arte"})
		if !errors.Is(err, domain.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("successful update", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository()
		var updated *domain.Category
		repo.UpdateFunc = func(ctx context.Context, category *domain.Category) error {
			updated = category
			return nil
		}

		svc := NewCategoryService(repo)
		if err := svc.Update(context.Background(), 5, &domain.Category{ID: 5, Name: "Arte", Active: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil || updated.Name != "Arte" {
			t.Errorf("category was not updated: %+v", updated)
		}
	})
}

func TestCategoryServiceImpl_Deactivate(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		svc := NewCategoryService(mocks.NewMockCategoryRepository())
		if err := svc.Deactivate(context.Background(), 99); !errors.Is(err, domain.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("existing category", func(t *testing.T) {
		repo := mocks.NewMockCategoryRepository()
		repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Arte", Active: true}, nil
		}
		var deactivated uint
		repo.DeactivateFunc = func(ctx context.Context, id uint) error {
			deactivated = id
			return nil
		}

		svc := NewCategoryService(repo)
		if err := svc.Deactivate(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deactivated != 5 {
			t.Errorf("expected category 5 deactivated, got %d", deactivated)
		}
	})
}
