package handlers

import (
	"autorent/internal/models"
	"autorent/internal/services"
	"autorent/internal/utils"
	"autorent/internal/validators"
	"autorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService services.ContactService
	logger         *logger.Logger
}

func NewContactHandler(contactService services.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         log,
	}
}

// SubmitMessage handles POST /contact. Public, no auth.
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req validators.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body")
		return
	}
	if errs := validators.ValidateContactRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Fields())
		return
	}

	submission := &models.ContactSubmission{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if err := h.contactService.SubmitMessage(c.Request.Context(), submission); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Message received", gin.H{"id": submission.ID})
}
