package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
)

// MemoryRepository is an in-memory identity store. It backs the
// "memory" storage backend and the service tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory identity store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

var _ user.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return user.ErrEmailAlreadyExists
	}

	// First-user-admin bootstrap; atomic under the same lock as the insert.
	if len(r.users) == 0 {
		u.Role = user.RoleAdmin
	}

	clone := *u
	r.users[u.ID] = &clone
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, user.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byEmail[email]
	if !exists {
		return nil, user.ErrUserNotFound
	}
	clone := *r.users[id]
	return &clone, nil
}

func (r *MemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byEmail[email]
	return exists, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users), nil
}
