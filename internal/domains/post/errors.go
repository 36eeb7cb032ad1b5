package post

import "errors"

// Repository-level errors
var (
	ErrPostNotFound       = errors.New("post not found")
	ErrTitleAlreadyExists = errors.New("a post with that title already exists")
	ErrAuthorNotFound     = errors.New("author not found")
)

// Service-level (authorization) errors
var (
	ErrForbidden     = errors.New("forbidden: admin role required")
	ErrLoginRequired = errors.New("you need to login or register to comment")
)
