package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/you/notesvc/domain"
)

// OTPServiceImpl implements domain.OTPService
type OTPServiceImpl struct {
	challengeRepo domain.ChallengeRepository
	config        OTPConfig
}

type OTPConfig struct {
	TTL time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(challengeRepo domain.ChallengeRepository, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		challengeRepo: challengeRepo,
		config:        config,
	}
}

// Issue implements domain.OTPService. The new challenge is persisted
// before returning, overwriting whatever challenge was current for the
// email; the previous code becomes unusable at that point.
func (s *OTPServiceImpl) Issue(ctx context.Context, email string) (*domain.Challenge, error) {
	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	challenge := domain.Challenge{
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}

	if err := s.challengeRepo.Save(ctx, email, challenge); err != nil {
		return nil, fmt.Errorf("failed to store OTP challenge: %w", err)
	}

	return &challenge, nil
}

// generateSecureCode draws a code uniformly from [100000, 999999]. The
// range excludes leading zeros, so no padding is needed.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
