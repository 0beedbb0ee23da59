package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/you/notesvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	challengeRepo   domain.ChallengeRepository
	otpSvc          domain.OTPService
	tokenSvc        domain.TokenService
	notificationSvc domain.NotificationService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	challengeRepo domain.ChallengeRepository,
	otpSvc domain.OTPService,
	tokenSvc domain.TokenService,
	notificationSvc domain.NotificationService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		challengeRepo:   challengeRepo,
		otpSvc:          otpSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
	}
}

// Register implements domain.AuthService. The user row is committed
// before the OTP email goes out; a delivery failure surfaces as
// ErrDeliveryFailed and deliberately leaves the unverified row behind.
// The caller recovers by hitting resend, which issues a fresh challenge
// for the existing account.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email string, dateOfBirth time.Time) (*domain.OTPIssued, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	user := &domain.User{
		Name:        name,
		Email:       email,
		DateOfBirth: dateOfBirth,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	challenge, err := s.otpSvc.Issue(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue OTP: %w", err)
	}

	if err := s.notificationSvc.SendOTPEmail(email, name, challenge.Code); err != nil {
		log.Printf("OTP_DELIVERY_FAILED: email=%s error=%v", email, err)
		return nil, domain.ErrDeliveryFailed
	}

	return &domain.OTPIssued{Email: email, ExpiresAt: challenge.ExpiresAt}, nil
}

// VerifyOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.consumeChallenge(ctx, email, code); err != nil {
		return nil, err
	}

	if err := s.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to mark email verified: %w", err)
	}
	user.IsEmailVerified = true

	log.Printf("EMAIL_VERIFIED: user_id=%d email=%s", user.ID, user.Email)

	// Post-commit notification: the verification is already persisted,
	// so a welcome email failure is logged and never rolls it back.
	if err := s.notificationSvc.SendWelcomeEmail(user.Email, user.Name); err != nil {
		log.Printf("WELCOME_EMAIL_FAILED: user_id=%d email=%s error=%v", user.ID, user.Email, err)
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// ResendOTP implements domain.AuthService. A fresh challenge is issued
// unconditionally, regardless of verification state, invalidating any
// previously issued code. There is no throttle.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) (*domain.OTPIssued, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	return s.issueAndSend(ctx, user)
}

// RequestLoginOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestLoginOTP(ctx context.Context, email string) (*domain.OTPIssued, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsEmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	return s.issueAndSend(ctx, user)
}

// Login implements domain.AuthService. No notification is sent on a
// successful login.
func (s *AuthServiceImpl) Login(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsEmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	if err := s.consumeChallenge(ctx, email, code); err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// consumeChallenge checks the presented code against the current
// challenge and clears it on success. A missing challenge and a
// mismatched code both report ErrOTPInvalid; the mismatch check runs
// before the expiry check, so a wrong code against an expired challenge
// is still an invalid-code failure. The code comparison is an exact
// string compare, no normalization.
func (s *AuthServiceImpl) consumeChallenge(ctx context.Context, email, code string) error {
	challenge, err := s.challengeRepo.Find(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrOTPNotFound) {
			return domain.ErrOTPInvalid
		}
		return fmt.Errorf("failed to load OTP challenge: %w", err)
	}

	if challenge.Code != code {
		return domain.ErrOTPInvalid
	}
	if challenge.Expired(time.Now()) {
		return domain.ErrOTPExpired
	}

	if err := s.challengeRepo.Delete(ctx, email); err != nil {
		return fmt.Errorf("failed to clear OTP challenge: %w", err)
	}

	return nil
}

func (s *AuthServiceImpl) issueAndSend(ctx context.Context, user *domain.User) (*domain.OTPIssued, error) {
	challenge, err := s.otpSvc.Issue(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue OTP: %w", err)
	}

	if err := s.notificationSvc.SendOTPEmail(user.Email, user.Name, challenge.Code); err != nil {
		log.Printf("OTP_DELIVERY_FAILED: email=%s error=%v", user.Email, err)
		return nil, domain.ErrDeliveryFailed
	}

	return &domain.OTPIssued{Email: user.Email, ExpiresAt: challenge.ExpiresAt}, nil
}
