package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the content-store data access contract. Mutations are
// atomic with respect to their own invariant: title uniqueness cannot
// race, and deleting a post removes its comments in the same operation
// (cascade delete, the documented choice).
type Repository interface {
	// List returns all posts in creation order, stable across calls.
	List(ctx context.Context) ([]Post, error)

	// FindByID returns ErrPostNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// Create persists a new post.
	// Returns ErrTitleAlreadyExists on a title collision.
	Create(ctx context.Context, p *Post) error

	// Update replaces the stored post with p (all fields except
	// PublishedAt, which callers must carry over). A no-op rename never
	// conflicts with the post itself; collisions with other posts
	// return ErrTitleAlreadyExists. Returns ErrPostNotFound when absent.
	Update(ctx context.Context, p *Post) error

	// Delete removes the post and cascade-deletes its comments.
	// Returns ErrPostNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListComments returns a post's comments in creation order.
	ListComments(ctx context.Context, postID uuid.UUID) ([]Comment, error)

	// AddComment persists a comment.
	// Returns ErrPostNotFound when the post does not exist.
	AddComment(ctx context.Context, c *Comment) error
}
