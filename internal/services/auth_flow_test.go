package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/you/notesvc/domain"
	infraauth "github.com/you/notesvc/internal/infrastructure/auth"
	"github.com/you/notesvc/internal/infrastructure/repositories"
	"github.com/you/notesvc/internal/mocks"
)

// flowHarness wires the real services against sqlite and miniredis so
// the whole registration and login cycle can be driven in process. Only
// email delivery is mocked, capturing the codes a real user would read
// from their inbox.
type flowHarness struct {
	authSvc  domain.AuthService
	noteSvc  domain.NoteService
	tokenSvc domain.TokenService
	lastCode string
	welcomes int
}

func newFlowHarness(t *testing.T) *flowHarness {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&repositories.DBUser{}, &repositories.DBNote{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h := &flowHarness{}

	notificationSvc := mocks.NewMockNotificationService()
	notificationSvc.SendOTPEmailFunc = func(to, name, code string) error {
		h.lastCode = code
		return nil
	}
	notificationSvc.SendWelcomeEmailFunc = func(to, name string) error {
		h.welcomes++
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	challengeRepo := repositories.NewChallengeRepository(client, 24*time.Hour)
	otpSvc := NewOTPService(challengeRepo, OTPConfig{TTL: 10 * time.Minute})
	tokenSvc := infraauth.NewJWTService("flow-test-secret", "notesvc-test", 7*24*time.Hour)

	h.authSvc = NewAuthService(userRepo, challengeRepo, otpSvc, tokenSvc, notificationSvc)
	h.noteSvc = NewNoteService(noteRepo)
	h.tokenSvc = tokenSvc

	return h
}

func TestRegistrationAndLoginFlow(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()
	dob := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	// Register issues a 6-digit code valid for ten minutes
	issued, err := h.authSvc.Register(ctx, "Ann", "ann@x.com", dob)
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", issued.Email)
	assert.Len(t, h.lastCode, 6)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), issued.ExpiresAt, time.Minute)

	// Registering the same email twice is a conflict
	_, err = h.authSvc.Register(ctx, "Ann", "ann@x.com", dob)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	// Wrong code fails, without consuming the challenge
	_, err = h.authSvc.VerifyOTP(ctx, "ann@x.com", "000000")
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)

	// The issued code verifies exactly once
	result, err := h.authSvc.VerifyOTP(ctx, "ann@x.com", h.lastCode)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.User.IsEmailVerified)
	assert.Equal(t, 1, h.welcomes)

	claims, err := h.tokenSvc.Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)

	// Replaying the consumed code fails: the challenge is cleared
	_, err = h.authSvc.VerifyOTP(ctx, "ann@x.com", h.lastCode)
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)

	// Login cycle: request a fresh challenge, confirm it
	_, err = h.authSvc.RequestLoginOTP(ctx, "ann@x.com")
	require.NoError(t, err)
	loginResult, err := h.authSvc.Login(ctx, "ann@x.com", h.lastCode)
	require.NoError(t, err)
	assert.NotEmpty(t, loginResult.Token)
	assert.Equal(t, 1, h.welcomes, "login must not send a welcome email")

	// The login challenge was consumed as well
	_, err = h.authSvc.Login(ctx, "ann@x.com", h.lastCode)
	assert.ErrorIs(t, err, domain.ErrOTPInvalid)
}

func TestReissueInvalidatesPreviousCode(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	_, err := h.authSvc.Register(ctx, "Ann", "ann@x.com",
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	firstCode := h.lastCode

	// Resend until the fresh code differs from the first one; the old
	// code must be dead either way, but the assertion needs distinct codes
	for i := 0; i < 10 && h.lastCode == firstCode; i++ {
		_, err = h.authSvc.ResendOTP(ctx, "ann@x.com")
		require.NoError(t, err)
	}
	require.NotEqual(t, firstCode, h.lastCode, "could not obtain a distinct code")

	_, err = h.authSvc.VerifyOTP(ctx, "ann@x.com", firstCode)
	assert.ErrorIs(t, err, domain.ErrOTPInvalid, "superseded code must be rejected")

	_, err = h.authSvc.VerifyOTP(ctx, "ann@x.com", h.lastCode)
	assert.NoError(t, err, "latest code must verify")
}

func TestUnverifiedUserCannotLogin(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	_, err := h.authSvc.Register(ctx, "Bob", "bob@x.com",
		time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = h.authSvc.RequestLoginOTP(ctx, "bob@x.com")
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)

	// Even with the correct pending code, login is rejected before the
	// challenge is looked at
	_, err = h.authSvc.Login(ctx, "bob@x.com", h.lastCode)
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)
}

func TestNoteOwnershipFlow(t *testing.T) {
	h := newFlowHarness(t)
	ctx := context.Background()

	register := func(name, email string) *domain.User {
		_, err := h.authSvc.Register(ctx, name, email,
			time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		result, err := h.authSvc.VerifyOTP(ctx, email, h.lastCode)
		require.NoError(t, err)
		return result.User
	}

	userA := register("Ann", "ann@x.com")
	userB := register("Bob", "bob@x.com")

	note, err := h.noteSvc.CreateNote(ctx, userA.ID, "Groceries")
	require.NoError(t, err)
	require.NotZero(t, note.ID)

	// Ownership mismatch is a not-found, and the note survives
	err = h.noteSvc.DeleteNote(ctx, userB.ID, note.ID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)

	err = h.noteSvc.DeleteNote(ctx, userA.ID, note.ID)
	assert.NoError(t, err)

	// Hard delete: a second attempt finds nothing
	err = h.noteSvc.DeleteNote(ctx, userA.ID, note.ID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}
