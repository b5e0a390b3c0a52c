package usecase

import (
	"context"
	"testing"

	"golf-lesson-booking/internal/dto/request"
	"golf-lesson-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(env *testEnv) AuthService {
	config := &utils.Config{}
	config.Session.ExpiryHours = 72
	return NewAuthService(env.repo, config, zap.NewNop())
}

func TestAuthRegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	svc := newAuthService(env)

	name := "山田花子"
	registered, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "Hanako@Example.com",
		Password: "supersecret",
		Name:     &name,
	})
	require.NoError(t, err)

	// Email is normalized to lower case.
	assert.Equal(t, "hanako@example.com", registered.Email)
	assert.NotEmpty(t, registered.Token)

	loggedIn, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "hanako@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)
	assert.NotEmpty(t, loggedIn.Token)
	assert.NotEqual(t, registered.Token, loggedIn.Token)
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv()
	svc := newAuthService(env)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "hanako@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "hanako@example.com",
		Password: "othersecret",
	})
	assert.ErrorContains(t, err, "already registered")
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	env := newTestEnv()
	svc := newAuthService(env)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "hanako@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "hanako@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorContains(t, err, "invalid email or password")

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorContains(t, err, "invalid email or password")
}

func TestAuthLogout_InvalidatesSession(t *testing.T) {
	env := newTestEnv()
	svc := newAuthService(env)

	registered, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "hanako@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	session, err := env.sessions.FindValidSession(context.Background(), registered.Token)
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, svc.Logout(context.Background(), registered.Token))

	session, err = env.sessions.FindValidSession(context.Background(), registered.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
