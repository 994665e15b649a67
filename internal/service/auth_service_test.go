package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/systemdesignlab/content-api/internal/config"
	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/service"
	"github.com/systemdesignlab/content-api/internal/session"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(username, password string) (*service.AuthService, *session.Codec) {
	cfg := &config.Config{
		AdminUsername:  username,
		AdminPassword:  password,
		AdminJWTSecret: "test-secret",
	}
	codec := session.NewCodec(cfg.AdminJWTSecret)
	return service.NewAuthService(cfg, codec), codec
}

func TestAuthService_Login(t *testing.T) {
	svc, codec := newAuthService("admin", "correct-horse")

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		token, identity, err := svc.Login(service.LoginInput{Username: "admin", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "admin", identity.Username)

		verified, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", verified.Username)
	})

	t.Run("wrong username and wrong password fail identically", func(t *testing.T) {
		_, _, userErr := svc.Login(service.LoginInput{Username: "nope", Password: "correct-horse"})
		_, _, passErr := svc.Login(service.LoginInput{Username: "admin", Password: "nope"})

		assert.ErrorIs(t, userErr, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, passErr, domain.ErrInvalidCredentials)
		assert.Equal(t, userErr, passErr)
	})
}

func TestAuthService_LoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, _ := newAuthService("admin", string(hash))

	_, _, err = svc.Login(service.LoginInput{Username: "admin", Password: "correct-horse"})
	assert.NoError(t, err)

	_, _, err = svc.Login(service.LoginInput{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnconfigured(t *testing.T) {
	svc, _ := newAuthService("", "")

	_, _, err := svc.Login(service.LoginInput{Username: "admin", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestAuthService_Identify(t *testing.T) {
	svc, codec := newAuthService("admin", "pw")

	token, err := codec.Sign(domain.AdminIdentity{Username: "admin"})
	require.NoError(t, err)

	identity, ok := svc.Identify(token)
	assert.True(t, ok)
	assert.Equal(t, "admin", identity.Username)

	_, ok = svc.Identify("")
	assert.False(t, ok)

	_, ok = svc.Identify("garbage")
	assert.False(t, ok)
}
