package mocks

import (
	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	AddPolicyFunc       func(role, resource, action string) error
	RemovePolicyFunc    func(role, resource, action string) error
	CheckPermissionFunc func(role, resource, action string) (bool, error)
	GetPoliciesFunc     func() [][]string

	// Policies backs the default in-memory behavior
	Policies [][]string
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// AddPolicy adds a policy rule
func (m *MockPolicyService) AddPolicy(role, resource, action string) error {
	if m.AddPolicyFunc != nil {
		return m.AddPolicyFunc(role, resource, action)
	}
	m.Policies = append(m.Policies, []string{role, resource, action})
	return nil
}

// RemovePolicy removes a policy rule
func (m *MockPolicyService) RemovePolicy(role, resource, action string) error {
	if m.RemovePolicyFunc != nil {
		return m.RemovePolicyFunc(role, resource, action)
	}
	for i, rule := range m.Policies {
		if rule[0] == role && rule[1] == resource && rule[2] == action {
			m.Policies = append(m.Policies[:i], m.Policies[i+1:]...)
			break
		}
	}
	return nil
}

// CheckPermission checks a request against the stored rules
func (m *MockPolicyService) CheckPermission(role, resource, action string) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(role, resource, action)
	}
	for _, rule := range m.Policies {
		if rule[0] == role && rule[1] == resource && rule[2] == action {
			return true, nil
		}
	}
	return false, nil
}

// GetPolicies returns all stored rules
func (m *MockPolicyService) GetPolicies() [][]string {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	return m.Policies
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*MockPolicyService)(nil)
