package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// OrganizerServiceImpl implements domain.OrganizerService
type OrganizerServiceImpl struct {
	organizerRepo domain.OrganizerRepository
	userRepo      domain.UserRepository
	passwordSvc   domain.PasswordService
	notifySvc     domain.NotificationService
	logger        *slog.Logger
}

// NewOrganizerService creates a new organizer service
func NewOrganizerService(
	organizerRepo domain.OrganizerRepository,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	notifySvc domain.NotificationService,
	logger *slog.Logger,
) domain.OrganizerService {
	return &OrganizerServiceImpl{
		organizerRepo: organizerRepo,
		userRepo:      userRepo,
		passwordSvc:   passwordSvc,
		notifySvc:     notifySvc,
		logger:        logger,
	}
}

// List implements domain.OrganizerService
func (s *OrganizerServiceImpl) List(ctx context.Context) ([]domain.Organizer, error) {
	return s.organizerRepo.List(ctx)
}

// ListProfiles implements domain.OrganizerService
func (s *OrganizerServiceImpl) ListProfiles(ctx context.Context) ([]domain.OrganizerProfile, error) {
	return s.organizerRepo.ListProfiles(ctx)
}

// Get implements domain.OrganizerService
func (s *OrganizerServiceImpl) Get(ctx context.Context, userID uint) (*domain.OrganizerProfile, error) {
	return s.organizerRepo.FindProfileByUserID(ctx, userID)
}

// Create implements domain.OrganizerService. Creates the backing user
// with a name-derived default password, then the organizer row. The
// plaintext default password is returned to the caller and, when a
// phone is present, sent by SMS; delivery failure is never fatal.
func (s *OrganizerServiceImpl) Create(ctx context.Context, req domain.OrganizerCreate) (string, error) {
	taken, err := s.userRepo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrDuplicateEmail
	}

	taken, err = s.userRepo.NameTaken(ctx, req.Name, 0)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrDuplicateName
	}

	plainPassword := DefaultPassword(req.Name)
	hash, err := s.passwordSvc.Hash(plainPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         domain.RoleOrganizer,
		Active:       true,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	organizer := &domain.Organizer{
		UserID:     user.ID,
		Department: req.Department,
		Position:   req.Position,
		Bio:        req.Bio,
		Shifts:     strings.Join(req.Shifts, ","),
		WorkDays:   strings.Join(req.WorkDays, ","),
	}
	if err := s.organizerRepo.Create(ctx, organizer); err != nil {
		return "", fmt.Errorf("failed to create organizer: %w", err)
	}

	if req.Phone != "" {
		msg := fmt.Sprintf("Bienvenido al Portal de Actividades, %s. Tu contraseña temporal es: %s", req.Name, plainPassword)
		if err := s.notifySvc.SendSMS(req.Phone, msg); err != nil {
			s.logger.Error("welcome sms failed", "user_id", user.ID, "error", err)
		}
	}

	return plainPassword, nil
}

// Update implements domain.OrganizerService. Blank fields in the patch
// leave the stored values untouched.
func (s *OrganizerServiceImpl) Update(ctx context.Context, userID uint, patch domain.OrganizerPatch) error {
	organizer, err := s.organizerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	user := organizer.User

	if notBlank(patch.Name) {
		taken, err := s.userRepo.NameTaken(ctx, patch.Name, user.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateName
		}
		user.Name = patch.Name
	}

	if notBlank(patch.Email) {
		taken, err := s.userRepo.EmailTaken(ctx, patch.Email, user.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateEmail
		}
		user.Email = patch.Email
	}

	if notBlank(patch.Phone) {
		user.Phone = patch.Phone
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}
	if notBlank(patch.Department) {
		organizer.Department = patch.Department
	}
	if notBlank(patch.Position) {
		organizer.Position = patch.Position
	}
	if notBlank(patch.Bio) {
		organizer.Bio = patch.Bio
	}
	if patch.Shifts != nil {
		organizer.Shifts = *patch.Shifts
	}
	if patch.WorkDays != nil {
		organizer.WorkDays = *patch.WorkDays
	}

	return s.organizerRepo.Update(ctx, organizer)
}

// Deactivate implements domain.OrganizerService. Deactivates the
// linked user record; the organizer row is untouched.
func (s *OrganizerServiceImpl) Deactivate(ctx context.Context, userID uint) error {
	if _, err := s.organizerRepo.FindByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Deactivate(ctx, userID)
}

// Search implements domain.OrganizerService
func (s *OrganizerServiceImpl) Search(ctx context.Context, filter domain.OrganizerFilter) ([]domain.OrganizerProfile, error) {
	return s.organizerRepo.Search(ctx, filter)
}

// DefaultPassword derives the initial password for a new organizer:
// the lowercased name with spaces stripped, suffixed with "123".
func DefaultPassword(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "")) + "123"
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
