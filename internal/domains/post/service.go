package post

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/shared"
)

// Service is the content business logic contract. Every protected
// operation takes the acting principal and evaluates the admin guard
// before any mutation; a failed guard leaves the store untouched.
type Service interface {
	List(ctx context.Context) ([]PostDTO, error)

	Get(ctx context.Context, id uuid.UUID) (*PostDetailDTO, error)

	// Create requires an admin actor; stamps the publish date as now.
	Create(ctx context.Context, actor *shared.Principal, req CreatePostRequest) (*PostDTO, error)

	// Update requires an admin actor; never changes the publish date.
	Update(ctx context.Context, actor *shared.Principal, id uuid.UUID, req UpdatePostRequest) (*PostDTO, error)

	// Delete requires an admin actor. One-step destructive, no
	// confirmation round-trip (reference behavior, kept deliberately).
	Delete(ctx context.Context, actor *shared.Principal, id uuid.UUID) error

	// AddComment requires any authenticated actor.
	AddComment(ctx context.Context, actor *shared.Principal, postID uuid.UUID, req CommentRequest) (*CommentDTO, error)
}
