package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// CommentHandler serves anonymous resource comments.
type CommentHandler struct {
	commentSvc service.CommentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// CreateComment records a comment.
// POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleCommentError(c, err)
		return
	}

	response.Created(c, comment, "Comment recorded")
}

// ListComments lists a resource's comments.
// GET /api/comments?resourceId=...
func (h *CommentHandler) ListComments(c *gin.Context) {
	resourceID := c.Query("resourceId")
	if resourceID == "" {
		response.BadRequest(c, "resourceId query parameter is required")
		return
	}

	comments, err := h.commentSvc.ListByResource(c.Request.Context(), resourceID)
	if err != nil {
		h.handleCommentError(c, err)
		return
	}

	response.OKCount(c, comments, len(comments))
}

func (h *CommentHandler) handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentEmpty),
		errors.Is(err, service.ErrCommentTooLong):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrResourceNotFound):
		response.NotFound(c, "Resource not found")
	default:
		response.InternalError(c)
	}
}
