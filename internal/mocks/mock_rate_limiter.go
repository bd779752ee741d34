package mocks

import (
	"context"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockLoginRateLimiter implements domain.LoginRateLimiter interface for testing
type MockLoginRateLimiter struct {
	AllowFunc func(ctx context.Context, key string) (bool, error)
}

// NewMockLoginRateLimiter creates a new MockLoginRateLimiter with default behaviors
func NewMockLoginRateLimiter() *MockLoginRateLimiter {
	return &MockLoginRateLimiter{}
}

// Allow reports whether another attempt is permitted for the key
func (m *MockLoginRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key)
	}
	// Default behavior: always allowed
	return true, nil
}

// Compile-time interface compliance verification
var _ domain.LoginRateLimiter = (*MockLoginRateLimiter)(nil)
