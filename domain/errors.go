package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrEmailNotVerified  = errors.New("email not verified")
)

// OTP errors
var (
	ErrOTPInvalid  = errors.New("invalid otp code")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPNotFound = errors.New("otp not found")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Notification errors
var (
	ErrDeliveryFailed = errors.New("failed to deliver notification")
)

// Note errors
var (
	ErrNoteNotFound = errors.New("note not found")
)
