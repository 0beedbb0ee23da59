package mocks

import (
	"context"

	"github.com/you/notesvc/domain"
)

// MockChallengeRepository implements domain.ChallengeRepository for testing
type MockChallengeRepository struct {
	SaveFunc   func(ctx context.Context, email string, challenge domain.Challenge) error
	FindFunc   func(ctx context.Context, email string) (*domain.Challenge, error)
	DeleteFunc func(ctx context.Context, email string) error
}

// NewMockChallengeRepository creates a new MockChallengeRepository with default behaviors
func NewMockChallengeRepository() *MockChallengeRepository {
	return &MockChallengeRepository{}
}

// Save stores a challenge for the email
func (m *MockChallengeRepository) Save(ctx context.Context, email string, challenge domain.Challenge) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, email, challenge)
	}
	// Default behavior: success
	return nil
}

// Find returns the current challenge for the email
func (m *MockChallengeRepository) Find(ctx context.Context, email string) (*domain.Challenge, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, email)
	}
	// Default behavior: no challenge pending
	return nil, domain.ErrOTPNotFound
}

// Delete clears the challenge for the email
func (m *MockChallengeRepository) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ChallengeRepository = (*MockChallengeRepository)(nil)
