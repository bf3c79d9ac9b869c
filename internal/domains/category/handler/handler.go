package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/category/model"
	"newsroom-backend/internal/domains/category/service"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// =====================================================
// CATEGORY HANDLER
// =====================================================

type CategoryHandler struct {
	categoryService service.ServiceInterface
}

func NewCategoryHandler(categoryService service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories lists all categories
// GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("list categories failed", err)
		response.InternalServerError(c, "An error occurred while fetching categories")
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// GetCategoryBySlug gets a single category
// GET /api/v1/categories/:slug
func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.categoryService.GetCategoryBySlug(c.Request.Context(), slug)
	if err != nil {
		statusCode, errCode := mapCategoryError(err)
		if statusCode == http.StatusInternalServerError {
			logger.Error("get category failed", err)
			response.InternalServerError(c, "An error occurred while fetching the category")
			return
		}
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, category)
}

// mapCategoryError maps category errors to HTTP status codes
func mapCategoryError(err error) (int, string) {
	if catErr, ok := err.(*model.CategoryError); ok {
		switch catErr.Code {
		case model.ErrCodeCategoryNotFound:
			return http.StatusNotFound, catErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
