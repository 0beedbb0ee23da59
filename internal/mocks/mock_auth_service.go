package mocks

import (
	"context"
	"time"

	"github.com/you/notesvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc        func(ctx context.Context, name, email string, dateOfBirth time.Time) (*domain.OTPIssued, error)
	VerifyOTPFunc       func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	ResendOTPFunc       func(ctx context.Context, email string) (*domain.OTPIssued, error)
	RequestLoginOTPFunc func(ctx context.Context, email string) (*domain.OTPIssued, error)
	LoginFunc           func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	GetUserProfileFunc  func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user and issues an OTP
func (m *MockAuthService) Register(ctx context.Context, name, email string, dateOfBirth time.Time) (*domain.OTPIssued, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, dateOfBirth)
	}
	return &domain.OTPIssued{Email: email, ExpiresAt: time.Now().Add(10 * time.Minute)}, nil
}

// VerifyOTP verifies a registration OTP
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	return nil, domain.ErrOTPInvalid
}

// ResendOTP reissues an OTP
func (m *MockAuthService) ResendOTP(ctx context.Context, email string) (*domain.OTPIssued, error) {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return &domain.OTPIssued{Email: email, ExpiresAt: time.Now().Add(10 * time.Minute)}, nil
}

// RequestLoginOTP issues a login challenge
func (m *MockAuthService) RequestLoginOTP(ctx context.Context, email string) (*domain.OTPIssued, error) {
	if m.RequestLoginOTPFunc != nil {
		return m.RequestLoginOTPFunc(ctx, email)
	}
	return &domain.OTPIssued{Email: email, ExpiresAt: time.Now().Add(10 * time.Minute)}, nil
}

// Login confirms a login challenge
func (m *MockAuthService) Login(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, code)
	}
	return nil, domain.ErrOTPInvalid
}

// GetUserProfile resolves a user id to its profile
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
