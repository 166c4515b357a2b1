package service

import (
	"context"
	"testing"
	"time"

	"tasklist/internal/adapters/output/memory"
	"tasklist/internal/auth"
	"tasklist/internal/core/domain/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) (*AuthService, *auth.TokenManager) {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	svc, err := NewAuthService(memory.NewUserRepository(), tokens, zap.NewNop())
	require.NoError(t, err)
	return svc, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Alice@Example.COM ", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email, "email must be normalized")
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	token, err := svc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	for _, email := range []string{"", "not-an-email", "missing@tld", "two@@example.com"} {
		_, err := svc.Register(ctx, email, "s3cret")
		assert.ErrorIs(t, err, exceptions.ErrInvalidEmail, "email %q", email)
	}

	_, err := svc.Register(ctx, "alice@example.com", "")
	assert.ErrorIs(t, err, exceptions.ErrEmptyPassword)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ALICE@example.com", "other")
	assert.ErrorIs(t, err, exceptions.ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "bob@example.com", "s3cret")
	_, wrongErr := svc.Login(ctx, "alice@example.com", "wrong")

	assert.ErrorIs(t, unknownErr, exceptions.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, exceptions.ErrInvalidCredentials)
	// Unknown email and wrong password must be indistinguishable.
	assert.Equal(t, unknownErr, wrongErr)
}
