package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
	"github.com/SecondHemisphere/api-portal-actividades/internal/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultPassword(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "Carlos", "carlos123"},
		{"name with spaces", "Maria Jose Paredes", "mariajoseparedes123"},
		{"already lowercase", "ana", "ana123"},
		{"trailing space", "Luis ", "luis123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultPassword(tt.input); got != tt.expected {
				t.Errorf("DefaultPassword(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOrganizerServiceImpl_Create(t *testing.T) {
	req := domain.OrganizerCreate{
		Name:       "Maria Lopez",
		Email:      "maria@example.com",
		Phone:      "+593991234567",
		Department: "Deportes",
		Position:   "Coordinadora",
		Shifts:     []string{"Mañana", "Tarde"},
		WorkDays:   []string{"Lunes", "Miércoles"},
	}

	t.Run("successful create", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		var createdUser *domain.User
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = 42
			createdUser = user
			return nil
		}
		organizerRepo := mocks.NewMockOrganizerRepository()
		var createdOrganizer *domain.Organizer
		organizerRepo.CreateFunc = func(ctx context.Context, organizer *domain.Organizer) error {
			createdOrganizer = organizer
			return nil
		}
		notifySvc := mocks.NewMockNotificationService()

		svc := NewOrganizerService(organizerRepo, userRepo, mocks.NewMockPasswordService(), notifySvc, discardLogger())
		password, err := svc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if password != "marialopez123" {
			t.Errorf("expected default password marialopez123, got %q", password)
		}
		if createdUser == nil {
			t.Fatal("user was not created")
		}
		if createdUser.Role != domain.RoleOrganizer {
			t.Errorf("expected role %s, got %s", domain.RoleOrganizer, createdUser.Role)
		}
		if !createdUser.Active {
			t.Error("expected new user to be active")
		}
		if createdUser.PasswordHash != "hashed_marialopez123" {
			t.Errorf("expected hash of the default password, got %q", createdUser.PasswordHash)
		}
		if createdOrganizer == nil {
			t.Fatal("organizer was not created")
		}
		if createdOrganizer.UserID != 42 {
			t.Errorf("expected organizer linked to user 42, got %d", createdOrganizer.UserID)
		}
		if createdOrganizer.Shifts != "Mañana,Tarde" {
			t.Errorf("expected comma-joined shifts, got %q", createdOrganizer.Shifts)
		}
		if createdOrganizer.WorkDays != "Lunes,Miércoles" {
			t.Errorf("expected comma-joined work days, got %q", createdOrganizer.WorkDays)
		}
		if len(notifySvc.SentSMS) != 1 {
			t.Fatalf("expected one welcome SMS, got %d", len(notifySvc.SentSMS))
		}
		if notifySvc.SentSMS[0].To != req.Phone {
			t.Errorf("SMS sent to %s, expected %s", notifySvc.SentSMS[0].To, req.Phone)
		}
		if !strings.Contains(notifySvc.SentSMS[0].Message, "marialopez123") {
			t.Errorf("welcome SMS does not carry the temporary password: %q", notifySvc.SentSMS[0].Message)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.EmailTakenFunc = func(ctx context.Context, email string, excludeID uint) (bool, error) {
			return true, nil
		}
		svc := NewOrganizerService(mocks.NewMockOrganizerRepository(), userRepo, mocks.NewMockPasswordService(), mocks.NewMockNotificationService(), discardLogger())

		if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.NameTakenFunc = func(ctx context.Context, name string, excludeID uint) (bool, error) {
			return true, nil
		}
		svc := NewOrganizerService(mocks.NewMockOrganizerRepository(), userRepo, mocks.NewMockPasswordService(), mocks.NewMockNotificationService(), discardLogger())

		if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("sms failure is not fatal", func(t *testing.T) {
		notifySvc := mocks.NewMockNotificationService()
		notifySvc.SendSMSFunc = func(to, message string) error {
			return errors.New("twilio unavailable")
		}
		svc := NewOrganizerService(mocks.NewMockOrganizerRepository(), mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), notifySvc, discardLogger())

		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Errorf("sms failure should not fail the create: %v", err)
		}
	})

	t.Run("no phone means no sms", func(t *testing.T) {
		noPhone := req
		noPhone.Phone = ""
		notifySvc := mocks.NewMockNotificationService()
		svc := NewOrganizerService(mocks.NewMockOrganizerRepository(), mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), notifySvc, discardLogger())

		if _, err := svc.Create(context.Background(), noPhone); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifySvc.SentSMS) != 0 {
			t.Errorf("expected no SMS without a phone, got %d", len(notifySvc.SentSMS))
		}
	})
}

func storedOrganizer() *domain.Organizer {
	return &domain.Organizer{
		UserID:     42,
		Department: "Deportes",
		Position:   "Coordinadora",
		Bio:        "bio",
		Shifts:     "Mañana",
		WorkDays:   "Lunes",
		User: &domain.User{
			ID:     42,
			Name:   "Maria Lopez",
			Email:  "maria@example.com",
			Phone:  "+593991234567",
			Role:   domain.RoleOrganizer,
			Active: true,
		},
	}
}

func TestOrganizerServiceImpl_Update(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name     string
		patch    domain.OrganizerPatch
		validate func(t *testing.T, saved *domain.Organizer)
	}{
		{
			name:  "blank fields keep stored values",
			patch: domain.OrganizerPatch{Name: "  ", Email: "", Department: ""},
			validate: func(t *testing.T, saved *domain.Organizer) {
				if saved.User.Name != "Maria Lopez" {
					t.Errorf("blank name overwrote the stored value: %q", saved.User.Name)
				}
				if saved.Department != "Deportes" {
					t.Errorf("blank department overwrote the stored value: %q", saved.Department)
				}
			},
		},
		{
			name:  "set fields replace stored values",
			patch: domain.OrganizerPatch{Name: "Maria J. Lopez", Position: "Directora"},
			validate: func(t *testing.T, saved *domain.Organizer) {
				if saved.User.Name != "Maria J. Lopez" {
					t.Errorf("expected updated name, got %q", saved.User.Name)
				}
				if saved.Position != "Directora" {
					t.Errorf("expected updated position, got %q", saved.Position)
				}
			},
		},
		{
			name:  "active pointer false deactivates",
			patch: domain.OrganizerPatch{Active: boolPtr(false)},
			validate: func(t *testing.T, saved *domain.Organizer) {
				if saved.User.Active {
					t.Error("expected user to be inactive")
				}
			},
		},
		{
			name:  "shifts pointer empties the list",
			patch: domain.OrganizerPatch{Shifts: strPtr("")},
			validate: func(t *testing.T, saved *domain.Organizer) {
				if saved.Shifts != "" {
					t.Errorf("expected shifts cleared, got %q", saved.Shifts)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			organizerRepo := mocks.NewMockOrganizerRepository()
			organizerRepo.FindByUserIDFunc = func(ctx context.Context, userID uint) (*domain.Organizer, error) {
				return storedOrganizer(), nil
			}
			var saved *domain.Organizer
			organizerRepo.UpdateFunc = func(ctx context.Context, organizer *domain.Organizer) error {
				saved = organizer
				return nil
			}

			svc := NewOrganizerService(organizerRepo, mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), mocks.NewMockNotificationService(), discardLogger())
			if err := svc.Update(context.Background(), 42, tt.patch); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if saved == nil {
				t.Fatal("update was not persisted")
			}
			tt.validate(t, saved)
		})
	}

	t.Run("unknown organizer", func(t *testing.T) {
		svc := NewOrganizerService(mocks.NewMockOrganizerRepository(), mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), mocks.NewMockNotificationService(), discardLogger())
		err := svc.Update(context.Background(), 99, domain.OrganizerPatch{Name: "X"})
		if !errors.Is(err, domain.ErrOrganizerNotFound) {
			t.Errorf("expected ErrOrganizerNotFound, got %v", err)
		}
	})

	t.Run("new name already taken", func(t *testing.T) {
		organizerRepo := mocks.NewMockOrganizerRepository()
		organizerRepo.FindByUserIDFunc = func(ctx context.Context, userID uint) (*domain.Organizer, error) {
			return storedOrganizer(), nil
		}
		userRepo := mocks.NewMockUserRepository()
		userRepo.NameTakenFunc = func(ctx context.Context, name string, excludeID uint) (bool, error) {
			if excludeID != 42 {
				t.Errorf("probe must exclude the organizer's own user id, got %d", excludeID)
			}
			return true, nil
		}

		svc := NewOrganizerService(organizerRepo, userRepo, mocks.NewMockPasswordService(), mocks.NewMockNotificationService(), discardLogger())
		err := svc.Update(context.Background(), 42, domain.OrganizerPatch{Name: "Other Name"})
		if !errors.Is(err, domain.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})
}

func TestOrganizerServiceImpl_Deactivate(t *testing.T) {
	t.Run("deactivates the linked user", func(t *testing.T) {
		organizerRepo := mocks.NewMockOrganizerRepository()
		organizerRepo.FindByUserIDFunc = func(ctx context.Context, userID uint) (*domain.Organizer, error) {
			return storedOrganizer(), nil
		}
		userRepo := mocks.NewMockUserRepository()
		var deactivated uint
		userRepo.DeactivateFunc = func(ctx context.Context, id uint) error {
			deactivated = id
			return nil
		}

		svc := NewOrganizerService(organizerRepo, userRepo, mocks.NewMockPasswordService(), mocks.NewMockNotificationService(), discardLogger())
		if err := svc.Deactivate(context.Background(), 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deactivated != 42 {
			t.Errorf("expected user 42 deactivated, got %d", deactivated)
		}
	})

	t.Run("unknown organizer", func(t *testing.T) {
		svc := NewOrganizerService(mocks.NewMockOrganizerRepository(), mocks.NewMockUserRepository(), mocks.NewMockPasswordService(), mocks.NewMockNotificationService(), discardLogger())
		if err := svc.Deactivate(context.Background(), 99); !errors.Is(err, domain.ErrOrganizerNotFound) {
			t.Errorf("expected ErrOrganizerNotFound, got %v", err)
		}
	})
}
