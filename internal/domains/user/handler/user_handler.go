package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// UserHandler maps HTTP requests onto the identity/auth service.
// Stateless; holds only dependencies.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+result.User.ID.String())
	response.Success(c, http.StatusCreated, result)
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Logout handles POST /auth/logout. Tokens are stateless, so logout is
// a client-side discard; the endpoint exists for symmetry and is
// idempotent by construction.
func (h *UserHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}

// GetProfile handles GET /users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Unauthorized(c, "login required")
		return
	}

	dto, err := h.service.GetProfile(c.Request.Context(), p.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// handleError maps domain errors to HTTP status codes. The two login
// failure kinds keep distinct codes on purpose.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.ErrorResponse(c, http.StatusConflict, "EMAIL_TAKEN", "an account with that email already exists")
	case errors.Is(err, user.ErrEmailNotFound):
		response.ErrorResponse(c, http.StatusUnauthorized, "EMAIL_NOT_FOUND", "that email does not exist, please try again")
	case errors.Is(err, user.ErrWrongPassword):
		response.ErrorResponse(c, http.StatusUnauthorized, "WRONG_PASSWORD", "password incorrect, please try again")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "user not found")
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "something went wrong")
	}
}
