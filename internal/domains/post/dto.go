package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// POST DTOs
// ========================================

type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body" binding:"required"`
	ImageURL string `json:"image_url"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 250),
		),
		validation.Field(&r.Subtitle, validation.Length(0, 250)),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != "", is.URL.Error("image_url must be a valid URL")),
		),
	)
}

// UpdatePostRequest replaces every field except the publish date. The
// author id is carried in the form and applied as submitted, so an
// admin edit can reassign the post to another user.
type UpdatePostRequest struct {
	Title    string    `json:"title" binding:"required"`
	Subtitle string    `json:"subtitle"`
	Body     string    `json:"body" binding:"required"`
	ImageURL string    `json:"image_url"`
	AuthorID uuid.UUID `json:"author_id" binding:"required"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 250),
		),
		validation.Field(&r.Subtitle, validation.Length(0, 250)),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != "", is.URL.Error("image_url must be a valid URL")),
		),
		validation.Field(&r.AuthorID, validation.Required.Error("author_id is required")),
	)
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body,
			validation.Required.Error("comment body is required"),
			validation.Length(1, 2000),
		),
	)
}

// ========================================
// RESPONSE DTOs
// ========================================

// PostDTO is the listing/detail representation handed to the renderer.
// Date is the human-readable publish date the templates show.
type PostDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Body        string    `json:"body"`
	ImageURL    string    `json:"image_url"`
	AuthorID    uuid.UUID `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Date        string    `json:"date"`
	PublishedAt time.Time `json:"published_at"`
}

type CommentDTO struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"post_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostDetailDTO is a single post with its comments.
type PostDetailDTO struct {
	PostDTO
	Comments []CommentDTO `json:"comments"`
}

// dateFormat matches the reference's rendered publish date,
// e.g. "August 29, 2026".
const dateFormat = "January 2, 2006"

func (p *Post) ToDTO(authorName string) PostDTO {
	return PostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Body:        p.Body,
		ImageURL:    p.ImageURL,
		AuthorID:    p.AuthorID,
		AuthorName:  authorName,
		Date:        p.PublishedAt.Format(dateFormat),
		PublishedAt: p.PublishedAt,
	}
}

func (c *Comment) ToDTO(authorName string) CommentDTO {
	return CommentDTO{
		ID:         c.ID,
		PostID:     c.PostID,
		AuthorID:   c.AuthorID,
		AuthorName: authorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}
