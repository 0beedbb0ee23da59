package domain

import "time"

// User represents a registered account in the system
type User struct {
	ID              uint
	Name            string
	Email           string
	DateOfBirth     time.Time
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Challenge is the pending OTP awaiting consumption by verify or login.
// At most one challenge is active per user at any time; issuing a new
// one overwrites the previous one.
type Challenge struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the challenge can no longer be consumed at the
// given instant. The comparison is strict: a code presented at exactly
// ExpiresAt is still accepted.
func (c Challenge) Expired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}

// OTPIssued describes a freshly issued challenge to the caller
type OTPIssued struct {
	Email     string
	ExpiresAt time.Time
}

// AuthResult represents a successful verification or login
type AuthResult struct {
	User  *User
	Token string
}

// Note is a short text note owned by exactly one user
type Note struct {
	ID        uint
	Title     string
	AuthorID  uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
