package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/feed"
	"blog-backend/internal/shared/response"
)

type FeedHandler struct {
	service feed.Service
}

func NewFeedHandler(service feed.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// ListRecords handles GET /feed
func (h *FeedHandler) ListRecords(c *gin.Context) {
	records, err := h.service.List()
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, 200, records)
}

// GetRecord handles GET /feed/:id
func (h *FeedHandler) GetRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid record ID")
		return
	}

	record, err := h.service.GetByID(id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, 200, record)
}

func (h *FeedHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, feed.ErrUnavailable):
		response.ErrorResponse(c, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Feed is currently unavailable")
	case errors.Is(err, feed.ErrRecordNotFound):
		response.NotFound(c, "Feed record not found")
	default:
		response.InternalServerError(c, "Internal server error")
	}
}
