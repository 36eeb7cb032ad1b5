package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the identity-store data access contract. Implementations
// must be safe under concurrent callers; uniqueness of email and the
// first-user-admin bootstrap must hold even for concurrent Creates.
type Repository interface {
	// Create persists a new user. The very first user ever inserted is
	// given RoleAdmin regardless of the role on the passed entity; the
	// decision is atomic with the insert.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *User) error

	// FindByID returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail looks up by the exact stored email (case-sensitive).
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks whether an email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int, error)
}
