package auth

import (
	"testing"
	"time"

	"github.com/you/notesvc/domain"
)

func newTestJWTService(ttl time.Duration) domain.TokenService {
	return NewJWTService("test-secret", "notesvc-test", ttl)
}

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(7 * 24 * time.Hour)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user_id 42, got %d", claims.UserID)
	}

	ttl := time.Unix(claims.ExpiresAt, 0).Sub(time.Unix(claims.IssuedAt, 0))
	if ttl != 7*24*time.Hour {
		t.Errorf("expected 7 day validity, got %v", ttl)
	}
}

func TestJWTServiceImpl_Generate_UniqueTokens(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	a, err := svc.Generate(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := svc.Generate(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// jti makes tokens unique even for the same user in the same second
	if a == b {
		t.Error("expected distinct tokens for consecutive generations")
	}
}

func TestJWTServiceImpl_Validate_Failures(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	tests := []struct {
		name          string
		token         func() string
		expectedError error
	}{
		{
			name:          "garbage token",
			token:         func() string { return "not-a-jwt" },
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name:          "empty token",
			token:         func() string { return "" },
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name: "token signed with a different secret",
			token: func() string {
				other := NewJWTService("other-secret", "notesvc-test", time.Hour)
				token, _ := other.Generate(1)
				return token
			},
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name: "expired token",
			token: func() string {
				expired := newTestJWTService(-time.Minute)
				token, _ := expired.Generate(1)
				return token
			},
			expectedError: domain.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token())
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if err != tt.expectedError {
				t.Errorf("expected %v, got %v", tt.expectedError, err)
			}
		})
	}
}
