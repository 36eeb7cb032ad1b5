package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
)

// MemoryRepository is an in-memory content store. It backs the "memory"
// storage backend and the service tests. Listing order is insertion
// order, stable across calls.
type MemoryRepository struct {
	mu       sync.RWMutex
	posts    map[uuid.UUID]*post.Post
	order    []uuid.UUID
	byTitle  map[string]uuid.UUID
	comments map[uuid.UUID][]post.Comment // keyed by post id
}

// NewMemoryRepository creates an empty in-memory content store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		posts:    make(map[uuid.UUID]*post.Post),
		byTitle:  make(map[string]uuid.UUID),
		comments: make(map[uuid.UUID][]post.Comment),
	}
}

var _ post.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) List(ctx context.Context) ([]post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]post.Post, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.posts[id])
	}
	return out, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.posts[id]
	if !exists {
		return nil, post.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *MemoryRepository) Create(ctx context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTitle[p.Title]; exists {
		return post.ErrTitleAlreadyExists
	}

	clone := *p
	r.posts[p.ID] = &clone
	r.order = append(r.order, p.ID)
	r.byTitle[p.Title] = p.ID
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, p *post.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.posts[p.ID]
	if !exists {
		return post.ErrPostNotFound
	}

	// Title collisions only count against other posts; a no-op rename
	// must never be rejected.
	if holder, taken := r.byTitle[p.Title]; taken && holder != p.ID {
		return post.ErrTitleAlreadyExists
	}

	delete(r.byTitle, existing.Title)
	clone := *p
	r.posts[p.ID] = &clone
	r.byTitle[p.Title] = p.ID
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.posts[id]
	if !exists {
		return post.ErrPostNotFound
	}

	delete(r.byTitle, p.Title)
	delete(r.posts, id)
	delete(r.comments, id) // cascade, same critical section as the delete
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]post.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]post.Comment, len(r.comments[postID]))
	copy(out, r.comments[postID])
	return out, nil
}

func (r *MemoryRepository) AddComment(ctx context.Context, c *post.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[c.PostID]; !exists {
		return post.ErrPostNotFound
	}

	r.comments[c.PostID] = append(r.comments[c.PostID], *c)
	return nil
}
