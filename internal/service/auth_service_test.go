package service

import (
	"alcyxob/periodization-engine/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-do-not-use"

func newAuthFixture() (AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return NewAuthService(users, testJWTSecret, time.Hour), users
}

func TestRegister_CreatesUserWithoutHashInResponse(t *testing.T) {
	svc, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), "Alex", "alex@example.com", "supersecret", domain.RoleClient)
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "alex@example.com", user.Email)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Empty(t, user.PasswordHash)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Alex", "alex@example.com", "supersecret", domain.RoleClient)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Alex Again", "alex@example.com", "supersecret", domain.RoleClient)
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin_RoundTripIssuesValidToken(t *testing.T) {
	svc, _ := newAuthFixture()

	registered, err := svc.Register(context.Background(), "Alex", "alex@example.com", "supersecret", domain.RoleClient)
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "alex@example.com", "supersecret")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, registered.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.RoleClient, claims.Role)
}

func TestLogin_WrongPasswordFails(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Alex", "alex@example.com", "supersecret", domain.RoleClient)
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alex@example.com", "wrongpassword")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_UnknownEmailFails(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}
