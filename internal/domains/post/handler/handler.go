package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/post/model"
	"newsroom-backend/internal/domains/post/service"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// =====================================================
// POST HANDLER
// =====================================================

type PostHandler struct {
	postService service.ServiceInterface
}

func NewPostHandler(postService service.ServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// ListPosts lists published posts with filtering and pagination
// GET /api/v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	// Step 1: Bind query params
	var req model.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Call service
	posts, total, err := h.postService.ListPosts(c.Request.Context(), req)
	if err != nil {
		h.respondPostError(c, "list posts", err)
		return
	}

	// Step 3: Return page with meta
	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// GetPostDetail gets a published post with its comment tree
// GET /api/v1/posts/:slug
func (h *PostHandler) GetPostDetail(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.postService.GetPostDetail(c.Request.Context(), slug)
	if err != nil {
		h.respondPostError(c, "get post detail", err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// GetRelatedPosts gets up to 4 related posts for a published post
// GET /api/v1/posts/:slug/related
func (h *PostHandler) GetRelatedPosts(c *gin.Context) {
	slug := c.Param("slug")

	posts, err := h.postService.GetRelatedPosts(c.Request.Context(), slug)
	if err != nil {
		h.respondPostError(c, "get related posts", err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// GetAdjacentPosts gets the chronological neighbors of a published post
// GET /api/v1/posts/:slug/adjacent
func (h *PostHandler) GetAdjacentPosts(c *gin.Context) {
	slug := c.Param("slug")

	adjacent, err := h.postService.GetAdjacentPosts(c.Request.Context(), slug)
	if err != nil {
		h.respondPostError(c, "get adjacent posts", err)
		return
	}

	response.Success(c, http.StatusOK, adjacent)
}

// GetPostsByCategory lists published posts in a category
// GET /api/v1/categories/:slug/posts
func (h *PostHandler) GetPostsByCategory(c *gin.Context) {
	slug := c.Param("slug")

	posts, err := h.postService.GetPostsByCategory(c.Request.Context(), slug)
	if err != nil {
		h.respondPostError(c, "get posts by category", err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// GetFeaturedPosts lists featured posts for the home page
// GET /api/v1/posts/featured
func (h *PostHandler) GetFeaturedPosts(c *gin.Context) {
	posts, err := h.postService.GetFeaturedPosts(c.Request.Context())
	if err != nil {
		h.respondPostError(c, "get featured posts", err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// GetTrendingPosts lists the newest published posts
// GET /api/v1/posts/trending
func (h *PostHandler) GetTrendingPosts(c *gin.Context) {
	posts, err := h.postService.GetTrendingPosts(c.Request.Context())
	if err != nil {
		h.respondPostError(c, "get trending posts", err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// respondPostError maps a service error to an HTTP response, hiding
// internals behind a generic message for unexpected failures.
func (h *PostHandler) respondPostError(c *gin.Context, operation string, err error) {
	statusCode, errCode := mapPostError(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error(operation+" failed", err)
		response.InternalServerError(c, "An error occurred while fetching posts")
		return
	}
	response.ErrorResponse(c, statusCode, errCode, err.Error())
}

// mapPostError maps post errors to HTTP status codes
func mapPostError(err error) (int, string) {
	if postErr, ok := err.(*model.PostError); ok {
		switch postErr.Code {
		case model.ErrCodePostNotFound:
			return http.StatusNotFound, postErr.Code
		case model.ErrCodeInvalidRequest:
			return http.StatusBadRequest, postErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
