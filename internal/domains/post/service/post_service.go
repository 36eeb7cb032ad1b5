package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared"
)

type postService struct {
	repo  post.Repository
	users user.Repository
}

// NewPostService builds the content service. The user repository is
// used for explicit author lookups: relationships are foreign keys
// resolved at query time, not an object graph.
func NewPostService(repo post.Repository, users user.Repository) post.Service {
	return &postService{repo: repo, users: users}
}

func (s *postService) List(ctx context.Context) ([]post.PostDTO, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := map[uuid.UUID]string{}
	out := make([]post.PostDTO, 0, len(posts))
	for i := range posts {
		name, err := s.authorName(ctx, names, posts[i].AuthorID)
		if err != nil {
			return nil, err
		}
		out = append(out, posts[i].ToDTO(name))
	}
	return out, nil
}

func (s *postService) Get(ctx context.Context, id uuid.UUID) (*post.PostDetailDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}

	names := map[uuid.UUID]string{}
	authorName, err := s.authorName(ctx, names, p.AuthorID)
	if err != nil {
		return nil, err
	}

	detail := &post.PostDetailDTO{
		PostDTO:  p.ToDTO(authorName),
		Comments: make([]post.CommentDTO, 0, len(comments)),
	}
	for i := range comments {
		name, err := s.authorName(ctx, names, comments[i].AuthorID)
		if err != nil {
			return nil, err
		}
		detail.Comments = append(detail.Comments, comments[i].ToDTO(name))
	}
	return detail, nil
}

func (s *postService) Create(ctx context.Context, actor *shared.Principal, req post.CreatePostRequest) (*post.PostDTO, error) {
	// Guard before anything else: a forbidden call must not touch the store.
	if !actor.IsAdmin() {
		return nil, post.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &post.Post{
		ID:          uuid.New(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		AuthorID:    actor.UserID,
		PublishedAt: now, // stamped once, never rewritten by edits
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	dto := p.ToDTO(actor.Email)
	if u, err := s.users.FindByID(ctx, actor.UserID); err == nil {
		dto.AuthorName = u.FullName
	}
	return &dto, nil
}

func (s *postService) Update(ctx context.Context, actor *shared.Principal, id uuid.UUID, req post.UpdatePostRequest) (*post.PostDTO, error) {
	if !actor.IsAdmin() {
		return nil, post.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The edit form carries the author field; reassignment is applied
	// as submitted once the target account is known to exist.
	author, err := s.users.FindByID(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, post.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("resolve author: %w", err)
	}

	updated := &post.Post{
		ID:          existing.ID,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		AuthorID:    req.AuthorID,
		PublishedAt: existing.PublishedAt, // edits never move the publish date
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	dto := updated.ToDTO(author.FullName)
	return &dto, nil
}

func (s *postService) Delete(ctx context.Context, actor *shared.Principal, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return post.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func (s *postService) AddComment(ctx context.Context, actor *shared.Principal, postID uuid.UUID, req post.CommentRequest) (*post.CommentDTO, error) {
	if actor == nil {
		return nil, post.ErrLoginRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &post.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  actor.UserID,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}

	if err := s.repo.AddComment(ctx, c); err != nil {
		return nil, err
	}

	name := actor.Email
	if u, err := s.users.FindByID(ctx, actor.UserID); err == nil {
		name = u.FullName
	}
	dto := c.ToDTO(name)
	return &dto, nil
}

// authorName resolves a user's display name with per-call memoization.
func (s *postService) authorName(ctx context.Context, seen map[uuid.UUID]string, id uuid.UUID) (string, error) {
	if name, ok := seen[id]; ok {
		return name, nil
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			seen[id] = "unknown"
			return "unknown", nil
		}
		return "", fmt.Errorf("resolve author name: %w", err)
	}
	seen[id] = u.FullName
	return u.FullName, nil
}
