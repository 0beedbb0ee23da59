package mocks

import (
	"context"
	"time"

	"github.com/you/notesvc/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc func(ctx context.Context, email string) (*domain.Challenge, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and persists a challenge for the email
func (m *MockOTPService) Issue(ctx context.Context, email string) (*domain.Challenge, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email)
	}
	// Default behavior: fixed code, ten minute validity
	return &domain.Challenge{
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
