package services

import (
	"context"
	"errors"
	"strings"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	limiter     domain.LoginRateLimiter
}

// NewAuthService creates a new auth service. The limiter may be nil.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	limiter domain.LoginRateLimiter,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		limiter:     limiter,
	}
}

// Login implements domain.AuthService. An unknown email and a wrong
// password both map to ErrInvalidCredentials so callers cannot tell
// whether an email is registered. An inactive account still
// authenticates; deactivation gates nothing here.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, strings.ToLower(email))
		if err == nil && !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		// Store unavailability propagates, no retries
		return "", err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokenSvc.Generate(user)
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
