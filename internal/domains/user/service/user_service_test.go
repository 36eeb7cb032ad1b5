package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/domains/user/repository"
	"blog-backend/pkg/jwt"
)

func newTestService(t *testing.T, autoLogin bool) (user.Service, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewUserService(repo, manager, autoLogin), repo
}

func registerReq(email string) user.RegisterRequest {
	return user.RegisterRequest{
		Email:    email,
		Password: "password123",
		FullName: "Test User",
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, true)
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NotEmpty(t, result.AccessToken)
	assert.False(t, result.ExpiresAt.IsZero())

	// The stored hash must not be the raw password.
	stored, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegisterWithoutAutoLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, false)

	result, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)
	assert.Empty(t, result.AccessToken)
	assert.True(t, result.ExpiresAt.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, true)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq("alice@example.com"))
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, true)
	ctx := context.Background()

	first, err := svc.Register(ctx, registerReq("first@example.com"))
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, first.User.Role)

	second, err := svc.Register(ctx, registerReq("second@example.com"))
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, second.User.Role)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, true)

	req := registerReq("alice@example.com")
	req.Password = "abc"

	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, false)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	result, err := svc.Login(ctx, user.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, false)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrEmailNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, false)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	before, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	_, err = svc.Login(ctx, user.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)

	// A failed login must not mutate the account.
	after, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, true)
	ctx := context.Background()

	result, err := svc.Register(ctx, registerReq("alice@example.com"))
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "Test User", profile.FullName)
}
