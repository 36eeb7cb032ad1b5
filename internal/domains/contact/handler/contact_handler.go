package handler

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/domains/contact"
	"blog-backend/internal/infrastructure/email"
	"blog-backend/internal/shared/response"
)

type ContactHandler struct {
	emailService email.Service
}

func NewContactHandler(emailService email.Service) *ContactHandler {
	return &ContactHandler{emailService: emailService}
}

// SubmitMessage handles POST /contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, 400, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	msg := email.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := h.emailService.SendContactMessage(c.Request.Context(), msg); err != nil {
		// Delivery failure stays generic; mail server details are logged
		// server-side only.
		response.BadGateway(c, "Unable to deliver message")
		return
	}

	response.Success(c, 200, gin.H{"message": "Message sent successfully"})
}
