package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/ad/service"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// =====================================================
// AD HANDLER
// =====================================================

type AdHandler struct {
	adService service.ServiceInterface
}

func NewAdHandler(adService service.ServiceInterface) *AdHandler {
	return &AdHandler{
		adService: adService,
	}
}

// ListActiveAds lists active ads, optionally filtered by category slug
// GET /api/v1/ads?category=slug
func (h *AdHandler) ListActiveAds(c *gin.Context) {
	categorySlug := c.Query("category")

	ads, err := h.adService.ListActiveAds(c.Request.Context(), categorySlug)
	if err != nil {
		logger.Error("list ads failed", err)
		response.InternalServerError(c, "An error occurred while fetching ads")
		return
	}

	response.Success(c, http.StatusOK, ads)
}
