package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the identity/auth business logic contract.
type Service interface {
	// Register creates an account. The result carries an access token
	// only when auto-login is enabled.
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)

	// Login authenticates and mints an access token. Fails with
	// ErrEmailNotFound or ErrWrongPassword, never a merged kind.
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	// GetProfile materializes the current principal's account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
}
