package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/user"
)

func newUser(email string) *user.User {
	return &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$2a$12$fakehash",
		FullName:     "Test User",
		Role:         user.RoleUser,
		CreatedAt:    time.Now(),
	}
}

func TestMemoryRepositoryCreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	u := newUser("alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestMemoryRepositoryDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice@example.com")))

	err := repo.Create(ctx, newUser("alice@example.com"))
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryRepositoryFirstUserPromotedToAdmin(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	first := newUser("first@example.com")
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, user.RoleAdmin, first.Role)

	second := newUser("second@example.com")
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, user.RoleUser, second.Role)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, stored.Role)
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	exists, err := repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryRepositoryReturnsClones(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	u := newUser("alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	got.FullName = "Mutated"

	again, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", again.FullName)
}
