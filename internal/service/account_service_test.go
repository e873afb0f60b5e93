package service_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"movie-browse-server/internal/auth"
	"movie-browse-server/internal/repository"
	"movie-browse-server/internal/service"
	"movie-browse-server/internal/store"
)

func newAccountService(t *testing.T) *service.AccountService {
	t.Helper()
	s, err := store.NewFileStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	return service.NewAccountService(
		repository.NewUserRepository(s),
		auth.NewTokenService("test-secret"),
	)
}

func TestSignupThenLogin(t *testing.T) {
	svc := newAccountService(t)

	signup, err := svc.Signup("a@b.com", "pass123")
	require.NoError(t, err)
	require.NotEmpty(t, signup.Token)
	require.Equal(t, "a@b.com", signup.User.Email)
	require.NotZero(t, signup.User.ID)

	login, err := svc.Login("a@b.com", "pass123")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, signup.User.ID, login.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Signup("a@b.com", "pass123")
	require.NoError(t, err)

	// Conflict regardless of password.
	_, err = svc.Signup("a@b.com", "another-password")
	require.ErrorIs(t, err, service.ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Signup("a@b.com", "pass123")
	require.NoError(t, err)

	_, err = svc.Login("a@b.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Login("nobody@example.com", "pass123")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestSignupTokenIsVerifiable(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	s, err := store.NewFileStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	svc := service.NewAccountService(repository.NewUserRepository(s), tokens)

	resp, err := svc.Signup("a@b.com", "pass123")
	require.NoError(t, err)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, claims.ID)
	require.Equal(t, "a@b.com", claims.Email)
}
