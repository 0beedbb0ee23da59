package mocks

import "github.com/you/notesvc/domain"

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendOTPEmailFunc     func(to, name, code string) error
	SendWelcomeEmailFunc func(to, name string) error
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendOTPEmail sends an OTP email
func (m *MockNotificationService) SendOTPEmail(to, name, code string) error {
	if m.SendOTPEmailFunc != nil {
		return m.SendOTPEmailFunc(to, name, code)
	}
	// Default behavior: success (no actual email sent in tests)
	return nil
}

// SendWelcomeEmail sends a welcome email
func (m *MockNotificationService) SendWelcomeEmail(to, name string) error {
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(to, name)
	}
	// Default behavior: success (no actual email sent in tests)
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
