package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

// bcrypt cost 12: salted, iterated one-way hash; the raw password is
// never persisted in any form.
const bcryptCost = 12

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
	autoLogin  bool
}

// NewUserService builds the identity/auth service. autoLogin controls
// whether Register returns an access token along with the account.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager, autoLogin bool) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		autoLogin:  autoLogin,
	}
}

// Register creates a new account.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResult, error) {
	// Handler already validated; double-checking is cheap.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		FullName:     req.FullName,
		Role:         user.RoleUser, // repository promotes the first user to admin
		CreatedAt:    time.Now(),
	}

	// The repository enforces email uniqueness atomically; a pre-check
	// here would still race, so duplicates surface from Create.
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	result := &user.AuthResult{User: newUser.ToDTO()}

	if s.autoLogin {
		token, expiresAt, err := s.mintToken(newUser)
		if err != nil {
			return nil, err
		}
		result.AccessToken = token
		result.ExpiresAt = expiresAt
	}

	return result, nil
}

// Login authenticates a user and mints an access token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrEmailNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	// bcrypt.CompareHashAndPassword is constant-time (security)
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrWrongPassword
	}

	token, expiresAt, err := s.mintToken(u)
	if err != nil {
		return nil, err
	}

	return &user.AuthResult{
		User:        u.ToDTO(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// GetProfile materializes the user behind a principal.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) mintToken(u *user.User) (string, time.Time, error) {
	token, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role.String())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("generate access token: %w", err)
	}
	return token, time.Now().Add(s.jwtManager.Expiry()), nil
}
