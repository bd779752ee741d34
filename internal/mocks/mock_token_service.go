package mocks

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(user *domain.User) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate generates a token for the user
func (m *MockTokenService) Generate(user *domain.User) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	// Default behavior: return a mock token
	return fmt.Sprintf("token_user_%d_%s", user.ID, user.Role), nil
}

// Validate validates a token and returns claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: reject empty tokens, accept anything else
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.TokenClaims{
		UserID:    strconv.Itoa(1),
		Username:  "mock user",
		Role:      domain.RoleOrganizer,
		ExpiresAt: time.Now().Add(15 * time.Minute).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
