package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

func seedOrganizer(t *testing.T, db *gorm.DB, user *DBUser, organizer *DBOrganizer) {
	t.Helper()
	seedUser(t, db, user)
	organizer.UserID = user.ID
	if err := db.Create(organizer).Error; err != nil {
		t.Fatalf("failed to seed organizer: %v", err)
	}
}

func TestOrganizerRepositoryImpl_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	seedOrganizer(t, db,
		&DBUser{ID: 10, Name: "Maria Lopez", Email: "maria@example.com", Role: domain.RoleOrganizer, Active: true},
		&DBOrganizer{Department: "Deportes", Position: "Coordinadora", Shifts: "Mañana,Tarde", WorkDays: "Lunes,Martes"},
	)
	repo := NewOrganizerRepository(db)

	t.Run("loads the linked user", func(t *testing.T) {
		organizer, err := repo.FindByUserID(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if organizer.Department != "Deportes" {
			t.Errorf("expected department, got %q", organizer.Department)
		}
		if organizer.Shifts != "Mañana,Tarde" {
			t.Errorf("expected comma-joined shifts, got %q", organizer.Shifts)
		}
		if organizer.User == nil {
			t.Fatal("expected the user to be preloaded")
		}
		if organizer.User.Email != "maria@example.com" {
			t.Errorf("expected user email, got %q", organizer.User.Email)
		}
	})

	t.Run("unknown user id", func(t *testing.T) {
		if _, err := repo.FindByUserID(context.Background(), 99); !errors.Is(err, domain.ErrOrganizerNotFound) {
			t.Errorf("expected ErrOrganizerNotFound, got %v", err)
		}
	})
}

func TestOrganizerRepositoryImpl_ListProfilesOrder(t *testing.T) {
	db := setupTestDB(t)
	seedOrganizer(t, db,
		&DBUser{ID: 1, Name: "Inactiva", Email: "a@example.com", Role: domain.RoleOrganizer, Active: false},
		&DBOrganizer{Department: "Arte"},
	)
	seedOrganizer(t, db,
		&DBUser{ID: 2, Name: "Activa Dos", Email: "b@example.com", Role: domain.RoleOrganizer, Active: true},
		&DBOrganizer{Department: "Deportes"},
	)
	seedOrganizer(t, db,
		&DBUser{ID: 3, Name: "Activa Tres", Email: "c@example.com", Role: domain.RoleOrganizer, Active: true},
		&DBOrganizer{Department: "Música"},
	)
	repo := NewOrganizerRepository(db)

	profiles, err := repo.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(profiles))
	}
	// Active users first, then by id; the inactive profile closes the list
	wantIDs := []uint{2, 3, 1}
	for i, want := range wantIDs {
		if profiles[i].ID != want {
			t.Fatalf("expected order %v, got profile %d at position %d", wantIDs, profiles[i].ID, i)
		}
	}
	if profiles[0].Department != "Deportes" {
		t.Errorf("profile fields not joined: %+v", profiles[0])
	}
}

func TestOrganizerRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	seedOrganizer(t, db,
		&DBUser{ID: 10, Name: "Maria Lopez", Email: "maria@example.com", Role: domain.RoleOrganizer, Active: true},
		&DBOrganizer{Department: "Deportes", Position: "Coordinadora"},
	)
	repo := NewOrganizerRepository(db)
	ctx := context.Background()

	t.Run("writes user and organizer together", func(t *testing.T) {
		organizer, err := repo.FindByUserID(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		organizer.Position = "Directora"
		organizer.User.Name = "Maria J. Lopez"

		if err := repo.Update(ctx, organizer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reloaded, _ := repo.FindByUserID(ctx, 10)
		if reloaded.Position != "Directora" {
			t.Errorf("organizer row not updated: %q", reloaded.Position)
		}
		if reloaded.User.Name != "Maria J. Lopez" {
			t.Errorf("user row not updated: %q", reloaded.User.Name)
		}
	})

	t.Run("vanished organizer row", func(t *testing.T) {
		err := repo.Update(ctx, &domain.Organizer{UserID: 99, Department: "X"})
		if !errors.Is(err, domain.ErrOrganizerNotFound) {
			t.Errorf("expected ErrOrganizerNotFound, got %v", err)
		}
	})
}

func TestOrganizerRepositoryImpl_Search(t *testing.T) {
	db := setupTestDB(t)
	seedOrganizer(t, db,
		&DBUser{ID: 1, Name: "Maria Lopez", Email: "maria@example.com", Role: domain.RoleOrganizer, Active: true},
		&DBOrganizer{Department: "Deportes", Position: "Coordinadora", Shifts: "Mañana"},
	)
	seedOrganizer(t, db,
		&DBUser{ID: 2, Name: "Carlos Vera", Email: "carlos@example.com", Role: domain.RoleOrganizer, Active: true},
		&DBOrganizer{Department: "Arte", Position: "Instructor", Shifts: "Tarde"},
	)
	seedOrganizer(t, db,
		&DBUser{ID: 3, Name: "Ana Baja", Email: "ana@example.com", Role: domain.RoleOrganizer, Active: false},
		&DBOrganizer{Department: "Deportes", Position: "Asistente", Shifts: "Mañana"},
	)
	repo := NewOrganizerRepository(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		filter   domain.OrganizerFilter
		expected []uint
	}{
		{"no filters returns active only", domain.OrganizerFilter{}, []uint{1, 2}},
		{"name substring", domain.OrganizerFilter{Name: "Maria"}, []uint{1}},
		{"department", domain.OrganizerFilter{Department: "Deportes"}, []uint{1}},
		{"shift", domain.OrganizerFilter{Shift: "Tarde"}, []uint{2}},
		{"combined filters", domain.OrganizerFilter{Department: "Deportes", Shift: "Tarde"}, []uint{}},
		{"inactive users never match", domain.OrganizerFilter{Name: "Ana"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, err := repo.Search(ctx, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(profiles) != len(tt.expected) {
				t.Fatalf("expected %d results, got %d", len(tt.expected), len(profiles))
			}
			for i, id := range tt.expected {
				if profiles[i].ID != id {
					t.Errorf("result %d: expected id %d, got %d", i, id, profiles[i].ID)
				}
			}
		})
	}
}
