package post

import (
	"time"

	"github.com/google/uuid"
)

// Post is the content-store entity for a published blog post.
// PublishedAt is stamped once at creation and survives every edit.
type Post struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Title    string    `db:"title" json:"title"` // unique across all posts
	Subtitle string    `db:"subtitle" json:"subtitle"`
	Body     string    `db:"body" json:"body"`
	ImageURL string    `db:"image_url" json:"image_url"`

	// AuthorID is a plain foreign key; the admin edit form may reassign it.
	AuthorID uuid.UUID `db:"author_id" json:"author_id"`

	PublishedAt time.Time `db:"published_at" json:"published_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Comment is owned by exactly one user and one post. Comments are never
// edited or deleted individually; they go away only when their post is
// cascade-deleted.
type Comment struct {
	ID       uuid.UUID `db:"id" json:"id"`
	PostID   uuid.UUID `db:"post_id" json:"post_id"`
	AuthorID uuid.UUID `db:"author_id" json:"author_id"`
	Body     string    `db:"body" json:"body"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
