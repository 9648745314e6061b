package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// ActivityHandler serves the activity catalogue.
type ActivityHandler struct {
	activitySvc service.ActivityService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// ListActivities returns all activities with live enrollment counts.
// GET /api/activities
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activitySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKCount(c, activities, len(activities))
}

// GetActivity returns one activity by code.
// GET /api/activities/:code
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	code := c.Param("code")

	activity, err := h.activitySvc.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// CreateActivity registers a new activity.
// POST /api/activities
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.Created(c, activity, "Activity created")
}

// UpdateActivity applies a partial update.
// PUT /api/activities/:code
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	code := c.Param("code")

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), code, &req)
	if err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OK(c, activity)
}

// DeleteActivity removes an activity and, via cascade, its enrollments.
// DELETE /api/activities/:code
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	code := c.Param("code")

	if err := h.activitySvc.Delete(c.Request.Context(), code); err != nil {
		h.handleActivityError(c, err)
		return
	}

	response.OKWithMessage(c, nil, "Activity deleted")
}

func (h *ActivityHandler) handleActivityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, "Activity not found")
	case errors.Is(err, service.ErrDuplicateActivityCode):
		response.Conflict(c, "Activity code already exists")
	case errors.Is(err, service.ErrUnknownLocation),
		errors.Is(err, service.ErrUnknownActivityType),
		errors.Is(err, service.ErrInvalidCapacity):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
