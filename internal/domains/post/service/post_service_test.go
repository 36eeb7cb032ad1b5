package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
	postRepo "blog-backend/internal/domains/post/repository"
	"blog-backend/internal/domains/user"
	userRepo "blog-backend/internal/domains/user/repository"
	"blog-backend/internal/shared"
)

type fixture struct {
	svc   post.Service
	posts *postRepo.MemoryRepository
	users *userRepo.MemoryRepository
	admin *shared.Principal
	alice *shared.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := userRepo.NewMemoryRepository()
	posts := postRepo.NewMemoryRepository()

	// First account becomes admin, second stays a regular user.
	adminUser := &user.User{
		ID:        uuid.New(),
		Email:     "admin@example.com",
		FullName:  "Site Admin",
		Role:      user.RoleUser,
		CreatedAt: time.Now(),
	}
	require.NoError(t, users.Create(ctx, adminUser))

	aliceUser := &user.User{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		FullName:  "Alice",
		Role:      user.RoleUser,
		CreatedAt: time.Now(),
	}
	require.NoError(t, users.Create(ctx, aliceUser))

	return &fixture{
		svc:   NewPostService(posts, users),
		posts: posts,
		users: users,
		admin: &shared.Principal{UserID: adminUser.ID, Email: adminUser.Email, Role: shared.RoleAdmin},
		alice: &shared.Principal{UserID: aliceUser.ID, Email: aliceUser.Email, Role: shared.RoleUser},
	}
}

func createReq(title string) post.CreatePostRequest {
	return post.CreatePostRequest{
		Title:    title,
		Subtitle: "A subtitle",
		Body:     "Some body text",
		ImageURL: "https://example.com/image.png",
	}
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	dto, err := f.svc.Create(ctx, f.admin, createReq("First Post"))
	require.NoError(t, err)
	assert.Equal(t, "First Post", dto.Title)
	assert.Equal(t, f.admin.UserID, dto.AuthorID)
	assert.Equal(t, "Site Admin", dto.AuthorName)
	assert.False(t, dto.PublishedAt.IsZero())
}

func TestCreatePostForbiddenForNonAdmin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.alice, createReq("Sneaky Post"))
	assert.ErrorIs(t, err, post.ErrForbidden)

	_, err = f.svc.Create(ctx, nil, createReq("Anonymous Post"))
	assert.ErrorIs(t, err, post.ErrForbidden)

	// A rejected call must leave the store untouched.
	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.admin, createReq("Unique Title"))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.admin, createReq("Unique Title"))
	assert.ErrorIs(t, err, post.ErrTitleAlreadyExists)

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListPostsInCreationOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := f.svc.Create(ctx, f.admin, createReq(title))
		require.NoError(t, err)
	}

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "One", all[0].Title)
	assert.Equal(t, "Two", all[1].Title)
	assert.Equal(t, "Three", all[2].Title)
}

func TestUpdatePostPreservesPublishDate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Original Title"))
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, f.admin, created.ID, post.UpdatePostRequest{
		Title:    "Edited Title",
		Subtitle: "Edited subtitle",
		Body:     "Edited body",
		AuthorID: f.admin.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Edited Title", updated.Title)
	assert.True(t, created.PublishedAt.Equal(updated.PublishedAt))
}

func TestUpdatePostReassignsAuthor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Handover"))
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, f.admin, created.ID, post.UpdatePostRequest{
		Title:    "Handover",
		Body:     "Body",
		AuthorID: f.alice.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, f.alice.UserID, updated.AuthorID)
	assert.Equal(t, "Alice", updated.AuthorName)
}

func TestUpdatePostUnknownAuthor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Orphan"))
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.admin, created.ID, post.UpdatePostRequest{
		Title:    "Orphan",
		Body:     "Body",
		AuthorID: uuid.New(),
	})
	assert.ErrorIs(t, err, post.ErrAuthorNotFound)
}

func TestUpdatePostForbiddenForNonAdmin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Protected"))
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, f.alice, created.ID, post.UpdatePostRequest{
		Title:    "Hijacked",
		Body:     "Body",
		AuthorID: f.alice.UserID,
	})
	assert.ErrorIs(t, err, post.ErrForbidden)

	detail, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Protected", detail.Title)
}

func TestDeletePostCascadesComments(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Doomed"))
	require.NoError(t, err)

	_, err = f.svc.AddComment(ctx, f.alice, created.ID, post.CommentRequest{Body: "Nice post"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, f.admin, created.ID))

	_, err = f.svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, post.ErrPostNotFound)

	// Comments must not outlive their post.
	comments, err := f.posts.ListComments(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDeletePostNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	err := f.svc.Delete(context.Background(), f.admin, uuid.New())
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestDeletePostForbiddenForNonAdmin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Still Here"))
	require.NoError(t, err)

	err = f.svc.Delete(ctx, f.alice, created.ID)
	assert.ErrorIs(t, err, post.ErrForbidden)

	_, err = f.svc.Get(ctx, created.ID)
	assert.NoError(t, err)
}

func TestAddComment(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Discussed"))
	require.NoError(t, err)

	dto, err := f.svc.AddComment(ctx, f.alice, created.ID, post.CommentRequest{Body: "First!"})
	require.NoError(t, err)
	assert.Equal(t, "First!", dto.Body)
	assert.Equal(t, "Alice", dto.AuthorName)

	detail, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "First!", detail.Comments[0].Body)
}

func TestAddCommentRequiresLogin(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.admin, createReq("Members Only"))
	require.NoError(t, err)

	_, err = f.svc.AddComment(ctx, nil, created.ID, post.CommentRequest{Body: "anon"})
	assert.ErrorIs(t, err, post.ErrLoginRequired)

	detail, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Comments)
}

func TestAddCommentUnknownPost(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.svc.AddComment(context.Background(), f.alice, uuid.New(), post.CommentRequest{Body: "lost"})
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
