package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"newsroom-backend/internal/domains/comment/model"
	"newsroom-backend/internal/domains/comment/service"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// =====================================================
// COMMENT HANDLER
// =====================================================

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// getCaller extracts the optional authenticated identity set by the
// OptionalAuth middleware.
func getCaller(c *gin.Context) service.Caller {
	caller := service.Caller{}

	userIDStr, exists := c.Get("user_id")
	if !exists {
		return caller
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return caller
	}

	caller.UserID = &userID
	caller.Username = c.GetString("username")
	return caller
}

// CreateComment creates a new comment or reply
// POST /api/v1/comments/create
func (h *CommentHandler) CreateComment(c *gin.Context) {
	// Step 1: Bind request body
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 2: Validate request; field errors are returned verbatim under
	// each failing field name
	if err := req.Validate(); err != nil {
		if fieldErrs, ok := err.(validation.Errors); ok {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid comment", fieldErrs)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	node, err := h.commentService.CreateComment(c.Request.Context(), getCaller(c), req)
	if err != nil {
		statusCode, errCode := mapCommentError(err)
		if statusCode == http.StatusInternalServerError {
			logger.Error("create comment failed", err)
			response.InternalServerError(c, "An error occurred while creating the comment")
			return
		}
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return created comment including empty replies
	response.Success(c, http.StatusCreated, node)
}

// ListComments lists paginated top-level comments with nested replies
// GET /api/v1/comments?post={post_id}
func (h *CommentHandler) ListComments(c *gin.Context) {
	// Step 1: Parse post ID
	postID, err := uuid.Parse(c.Query("post"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	// Step 2: Bind pagination params
	var req model.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	comments, total, err := h.commentService.ListComments(c.Request.Context(), postID, req)
	if err != nil {
		statusCode, errCode := mapCommentError(err)
		if statusCode == http.StatusInternalServerError {
			logger.Error("list comments failed", err)
			response.InternalServerError(c, "An error occurred while fetching comments")
			return
		}
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return page with meta
	response.SuccessWithMeta(c, http.StatusOK, comments, &response.Meta{
		Page:  req.Page,
		Limit: req.PageSize,
		Total: total,
	})
}

// mapCommentError maps comment errors to HTTP status codes
func mapCommentError(err error) (int, string) {
	if comErr, ok := err.(*model.CommentError); ok {
		switch comErr.Code {
		case model.ErrCodePostNotFound:
			return http.StatusNotFound, comErr.Code
		case model.ErrCodeParentMismatch, model.ErrCodeInvalidThread:
			return http.StatusBadRequest, comErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	if _, ok := err.(validation.Errors); ok {
		return http.StatusBadRequest, "VALIDATION_ERROR"
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
