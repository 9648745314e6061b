package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// RatingHandler serves anonymous resource ratings.
type RatingHandler struct {
	ratingSvc service.RatingService
}

// NewRatingHandler creates a RatingHandler.
func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

// CreateRating records a rating and returns the updated summary.
// POST /api/ratings
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	summary, err := h.ratingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRatingError(c, err)
		return
	}

	response.Created(c, summary, "Rating recorded")
}

// GetRatings returns the aggregate for one resource, or for every
// rated resource when no filter is given.
// GET /api/ratings?resourceId=...
func (h *RatingHandler) GetRatings(c *gin.Context) {
	if resourceID := c.Query("resourceId"); resourceID != "" {
		summary, err := h.ratingSvc.Summary(c.Request.Context(), resourceID)
		if err != nil {
			h.handleRatingError(c, err)
			return
		}
		response.OK(c, summary)
		return
	}

	summaries, err := h.ratingSvc.SummaryAll(c.Request.Context())
	if err != nil {
		h.handleRatingError(c, err)
		return
	}
	response.OKCount(c, summaries, len(summaries))
}

// DeleteRating removes one rating by its id.
// DELETE /api/ratings?id=...
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "id query parameter is required")
		return
	}

	if err := h.ratingSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleRatingError(c, err)
		return
	}

	response.OKWithMessage(c, nil, "Rating deleted")
}

func (h *RatingHandler) handleRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRatingOutOfRange):
		response.BadRequest(c, "Rating must be between 1 and 5")
	case errors.Is(err, service.ErrResourceNotFound):
		response.NotFound(c, "Resource not found")
	case errors.Is(err, service.ErrRatingNotFound):
		response.NotFound(c, "Rating not found")
	default:
		response.InternalError(c)
	}
}
