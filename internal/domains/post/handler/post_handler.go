package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// PostHandler maps HTTP requests onto the content service.
type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts handles GET /posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GetPost handles GET /posts/:id.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// CreatePost handles POST /posts (admin only).
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	dto, err := h.service.Create(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/posts/"+dto.ID.String())
	response.Success(c, http.StatusCreated, dto)
}

// UpdatePost handles PUT /posts/:id (admin only).
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	dto, err := h.service.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto)
}

// DeletePost handles DELETE /posts/:id (admin only).
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "post deleted"})
}

// AddComment handles POST /posts/:id/comments.
func (h *PostHandler) AddComment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req post.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	dto, err := h.service.AddComment(c.Request.Context(), middleware.PrincipalFrom(c), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, dto)
}

func (h *PostHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrForbidden):
		response.Forbidden(c, "admin role required")
	case errors.Is(err, post.ErrLoginRequired):
		response.Unauthorized(c, "you need to login or register to comment")
	case errors.Is(err, post.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, post.ErrTitleAlreadyExists):
		response.ErrorResponse(c, http.StatusConflict, "TITLE_TAKEN", "a post with that title already exists")
	case errors.Is(err, post.ErrAuthorNotFound):
		response.ErrorResponse(c, http.StatusBadRequest, "AUTHOR_NOT_FOUND", "author does not exist")
	default:
		logger.Error("post handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
