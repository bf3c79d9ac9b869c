package handler

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/newsletter/model"
	"newsroom-backend/internal/domains/newsletter/service"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// =====================================================
// NEWSLETTER HANDLER
// =====================================================

type NewsletterHandler struct {
	newsletterService service.ServiceInterface
}

func NewNewsletterHandler(newsletterService service.ServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

// Subscribe subscribes an email to the newsletter
// POST /api/v1/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.newsletterService.Subscribe(c.Request.Context(), &req)
	if err != nil {
		if verrs, ok := err.(validation.Errors); ok {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verrs)
			return
		}
		logger.Error("newsletter subscribe failed", err)
		response.InternalServerError(c, "An error occurred while subscribing. Please try again later.")
		return
	}

	// A brand-new subscription returns the created record; existing
	// records return a message describing the reconciliation outcome.
	if result.Status == model.StatusNew {
		response.Success(c, http.StatusCreated, result.Subscription)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": result.Message})
}
