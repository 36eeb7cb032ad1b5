package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post"
	"blog-backend/pkg/cache"
)

// Single-post reads are cache-aside with a short TTL; writes invalidate.
const postCacheTTL = 15 * time.Minute

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository returns the PostgreSQL-backed content store.
// Pass cache.Noop{} when redis is not configured.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

func postCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("post:%s", id.String())
}

const selectPostColumns = `
	SELECT id, title, subtitle, body, image_url, author_id,
	       published_at, created_at, updated_at
	FROM posts
`

func (r *postgresRepository) List(ctx context.Context) ([]post.Post, error) {
	rows, err := r.pool.Query(ctx, selectPostColumns+`ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Subtitle, &p.Body, &p.ImageURL, &p.AuthorID,
			&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	cacheKey := postCacheKey(id)

	var cached post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	p := &post.Post{}
	err := r.pool.QueryRow(ctx, selectPostColumns+`WHERE id = $1`, id).Scan(
		&p.ID, &p.Title, &p.Subtitle, &p.Body, &p.ImageURL, &p.AuthorID,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	// Cache failures must not fail the read.
	_ = r.cache.Set(ctx, cacheKey, p, postCacheTTL)

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) error {
	query := `
		INSERT INTO posts (id, title, subtitle, body, image_url, author_id,
		                   published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Subtitle, p.Body, p.ImageURL, p.AuthorID,
		p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapPostWriteError(err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post) error {
	query := `
		UPDATE posts
		SET title = $2, subtitle = $3, body = $4, image_url = $5,
		    author_id = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Subtitle, p.Body, p.ImageURL, p.AuthorID, p.UpdatedAt,
	)
	if err != nil {
		return mapPostWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	_ = r.cache.Delete(ctx, postCacheKey(p.ID))
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// comments.post_id carries ON DELETE CASCADE, so the dependent
	// comments vanish in the same statement.
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	_ = r.cache.Delete(ctx, postCacheKey(id))
	return nil
}

func (r *postgresRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]post.Comment, error) {
	query := `
		SELECT id, post_id, author_id, body, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []post.Comment
	for rows.Next() {
		var c post.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *postgresRepository) AddComment(ctx context.Context, c *post.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query, c.ID, c.PostID, c.AuthorID, c.Body, c.CreatedAt)
	if err != nil {
		// 23503 = foreign_key_violation; the author always exists (it is
		// the authenticated principal), so this means the post is gone.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return post.ErrPostNotFound
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// mapPostWriteError converts postgres constraint violations on the
// posts table into domain errors.
func mapPostWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation on the title index
			return post.ErrTitleAlreadyExists
		case "23503": // foreign_key_violation on author_id
			return post.ErrAuthorNotFound
		}
	}
	return fmt.Errorf("write post: %w", err)
}
