package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level (business logic) errors. Email-not-found and
// wrong-password are deliberately distinct: the reference surfaces them
// as separate messages and the API keeps that distinction.
var (
	ErrEmailNotFound = errors.New("no account registered with that email")
	ErrWrongPassword = errors.New("password is incorrect")
)
