package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
	"github.com/SecondHemisphere/api-portal-actividades/internal/mocks"
)

func TestActivityServiceImpl_Update(t *testing.T) {
	t.Run("id mismatch", func(t *testing.T) {
		svc := NewActivityService(mocks.NewMockActivityRepository())
		err := svc.Update(context.Background(), 3, &domain.Activity{ID: 4})
		if !errors.Is(err, domain.ErrIDMismatch) {
			t.Errorf("expected ErrIDMismatch, got %v", err)
		}
	})

	t.Run("matching ids persist", func(t *testing.T) {
		repo := mocks.NewMockActivityRepository()
		var updated *domain.Activity
		repo.UpdateFunc = func(ctx context.Context, activity *domain.Activity) error {
			updated = activity
			return nil
		}

		svc := NewActivityService(repo)
		err := svc.Update(context.Background(), 3, &domain.Activity{ID: 3, Title: "Torneo de ajedrez"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated == nil || updated.Title != "Torneo de ajedrez" {
			t.Errorf("activity was not updated: %+v", updated)
		}
	})
}

func TestActivityServiceImpl_Deactivate(t *testing.T) {
	t.Run("unknown activity", func(t *testing.T) {
		svc := NewActivityService(mocks.NewMockActivityRepository())
		if err := svc.Deactivate(context.Background(), 99); !errors.Is(err, domain.ErrActivityNotFound) {
			t.Errorf("expected ErrActivityNotFound, got %v", err)
		}
	})

	t.Run("existing activity", func(t *testing.T) {
		repo := mocks.NewMockActivityRepository()
		repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Activity, error) {
			return &domain.Activity{ID: id, Active: true}, nil
		}
		var deactivated uint
		repo.DeactivateFunc = func(ctx context.Context, id uint) error {
			deactivated = id
			return nil
		}

		svc := NewActivityService(repo)
		if err := svc.Deactivate(context.Background(), 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deactivated != 3 {
			t.Errorf("expected activity 3 deactivated, got %d", deactivated)
		}
	})
}

func TestActivityServiceImpl_Search(t *testing.T) {
	repo := mocks.NewMockActivityRepository()
	var gotFilter domain.ActivityFilter
	repo.SearchFunc = func(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityPublicView, error) {
		gotFilter = filter
		return []domain.ActivityPublicView{{ID: 1, Title: "Torneo"}}, nil
	}

	categoryID := uint(2)
	svc := NewActivityService(repo)
	views, err := svc.Search(context.Background(), domain.ActivityFilter{Title: "Torneo", CategoryID: &categoryID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one result, got %d", len(views))
	}
	if gotFilter.Title != "Torneo" || gotFilter.CategoryID == nil || *gotFilter.CategoryID != 2 {
		t.Errorf("filter was not forwarded: %+v", gotFilter)
	}
}
