package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// seedActivityFixtures installs one category, one organizer user and
// two activities (one inactive).
func seedActivityFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedUser(t, db, &DBUser{ID: 10, Name: "Maria Lopez", Email: "maria@example.com", Role: domain.RoleOrganizer, Active: true})
	seedCategories(t, db, &DBCategory{ID: 5, Name: "Deportes", Active: true})

	activities := []*DBActivity{
		{ID: 1, Title: "Torneo de ajedrez", Date: "2026-09-15", StartTime: "10:00", EndTime: "12:00",
			Location: "Sala principal", Capacity: 20, CategoryID: 5, OrganizerID: 10, Active: true},
		{ID: 2, Title: "Torneo cancelado", Date: "2026-09-16", StartTime: "10:00", EndTime: "12:00",
			Location: "Patio", Capacity: 10, CategoryID: 5, OrganizerID: 10, Active: false},
	}
	for _, a := range activities {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("failed to seed activity: %v", err)
		}
	}
}

func TestActivityRepositoryImpl_FindPublicByID(t *testing.T) {
	db := setupTestDB(t)
	seedActivityFixtures(t, db)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	t.Run("active activity resolves refs", func(t *testing.T) {
		view, err := repo.FindPublicByID(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Title != "Torneo de ajedrez" {
			t.Errorf("expected title, got %q", view.Title)
		}
		if view.Category.ID != 5 || view.Category.Name != "Deportes" {
			t.Errorf("category ref not resolved: %+v", view.Category)
		}
		if view.Organizer.ID != 10 || view.Organizer.Name != "Maria Lopez" {
			t.Errorf("organizer ref not resolved: %+v", view.Organizer)
		}
	})

	t.Run("inactive activity is hidden", func(t *testing.T) {
		if _, err := repo.FindPublicByID(ctx, 2); !errors.Is(err, domain.ErrActivityNotFound) {
			t.Errorf("expected ErrActivityNotFound for an inactive row, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := repo.FindPublicByID(ctx, 99); !errors.Is(err, domain.ErrActivityNotFound) {
			t.Errorf("expected ErrActivityNotFound, got %v", err)
		}
	})
}

func TestActivityRepositoryImpl_Search(t *testing.T) {
	db := setupTestDB(t)
	seedActivityFixtures(t, db)
	// A second active activity in another location and date
	if err := db.Create(&DBActivity{ID: 3, Title: "Clase de pintura", Date: "2026-09-20", StartTime: "15:00",
		EndTime: "17:00", Location: "Aula 2", Capacity: 15, CategoryID: 5, OrganizerID: 10, Active: true}).Error; err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}
	repo := NewActivityRepository(db)
	ctx := context.Background()

	uintPtr := func(v uint) *uint { return &v }

	tests := []struct {
		name     string
		filter   domain.ActivityFilter
		expected []uint
	}{
		{"no filters returns all active", domain.ActivityFilter{}, []uint{1, 3}},
		{"title substring", domain.ActivityFilter{Title: "ajedrez"}, []uint{1}},
		{"location substring", domain.ActivityFilter{Location: "Aula"}, []uint{3}},
		{"exact date", domain.ActivityFilter{Date: "2026-09-20"}, []uint{3}},
		{"category id", domain.ActivityFilter{CategoryID: uintPtr(5)}, []uint{1, 3}},
		{"organizer id", domain.ActivityFilter{OrganizerID: uintPtr(10)}, []uint{1, 3}},
		{"filters combine with AND", domain.ActivityFilter{Title: "Torneo", Date: "2026-09-20"}, []uint{}},
		{"inactive rows never match", domain.ActivityFilter{Title: "cancelado"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := repo.Search(ctx, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(views) != len(tt.expected) {
				t.Fatalf("expected %d results, got %d", len(tt.expected), len(views))
			}
			for i, id := range tt.expected {
				if views[i].ID != id {
					t.Errorf("result %d: expected id %d, got %d", i, id, views[i].ID)
				}
			}
		})
	}
}

func TestActivityRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	seedActivityFixtures(t, db)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	t.Run("rewrites the full row", func(t *testing.T) {
		err := repo.Update(ctx, &domain.Activity{
			ID: 1, Title: "Torneo de ajedrez (final)", Date: "2026-09-15",
			StartTime: "11:00", EndTime: "13:00", Location: "Sala principal",
			Capacity: 25, CategoryID: 5, OrganizerID: 10, Active: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		activity, _ := repo.FindByID(ctx, 1)
		if activity.Title != "Torneo de ajedrez (final)" || activity.Capacity != 25 || activity.StartTime != "11:00" {
			t.Errorf("row was not rewritten: %+v", activity)
		}
	})

	t.Run("vanished row", func(t *testing.T) {
		err := repo.Update(ctx, &domain.Activity{ID: 99, Title: "X", CategoryID: 5, OrganizerID: 10})
		if !errors.Is(err, domain.ErrActivityNotFound) {
			t.Errorf("expected ErrActivityNotFound, got %v", err)
		}
	})
}

func TestActivityRepositoryImpl_Deactivate(t *testing.T) {
	db := setupTestDB(t)
	seedActivityFixtures(t, db)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	if err := repo.Deactivate(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindPublicByID(ctx, 1); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Error("a deactivated activity must disappear from the public view")
	}
	// The raw row is still there
	activity, err := repo.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity.Active {
		t.Error("expected the row to be flagged inactive")
	}
}
