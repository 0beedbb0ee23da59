package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	MarkEmailVerified(ctx context.Context, userID uint) error
}

// NoteRepository defines note data access operations
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	DeleteByIDAndAuthor(ctx context.Context, noteID, authorID uint) error
}

// ChallengeRepository defines OTP challenge persistence operations.
// Save overwrites any existing challenge for the email.
type ChallengeRepository interface {
	Save(ctx context.Context, email string, challenge Challenge) error
	Find(ctx context.Context, email string) (*Challenge, error)
	Delete(ctx context.Context, email string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email string, dateOfBirth time.Time) (*OTPIssued, error)
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	ResendOTP(ctx context.Context, email string) (*OTPIssued, error)
	RequestLoginOTP(ctx context.Context, email string) (*OTPIssued, error)
	Login(ctx context.Context, email, code string) (*AuthResult, error)
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
}

// OTPService defines OTP issuance
type OTPService interface {
	Issue(ctx context.Context, email string) (*Challenge, error)
}

// NoteService defines note business logic
type NoteService interface {
	CreateNote(ctx context.Context, userID uint, title string) (*Note, error)
	DeleteNote(ctx context.Context, userID, noteID uint) error
}

// TokenService defines session credential operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound email delivery
type NotificationService interface {
	SendOTPEmail(to, name, code string) error
	SendWelcomeEmail(to, name string) error
}

// TokenClaims represents the session credential claims
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// CasbinEnforcer defines the methods we need from the Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
