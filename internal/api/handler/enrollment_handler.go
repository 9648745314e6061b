package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// EnrollmentHandler serves the enrollment ledger.
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
	feedSvc       service.FeedService
}

// NewEnrollmentHandler creates an EnrollmentHandler.
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService, feedSvc service.FeedService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc, feedSvc: feedSvc}
}

// CreateEnrollment enrolls a person in an activity.
// POST /api/enrollments
//
// A full activity or a duplicate enrollment is a business outcome, not a
// request failure: those come back as 200 with success=false and a
// stable error code so clients can branch on them.
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	enrollment, err := h.enrollmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OKWithMessage(c, enrollment, "Enrollment confirmed")
}

// ListEnrollments lists enrollments for an activity or an email.
// GET /api/enrollments?activityCode=... | ?email=...
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	activityCode := c.Query("activityCode")
	email := c.Query("email")

	switch {
	case activityCode != "":
		enrollments, err := h.enrollmentSvc.ListByActivity(c.Request.Context(), activityCode)
		if err != nil {
			h.handleEnrollmentError(c, err)
			return
		}
		response.OKCount(c, enrollments, len(enrollments))
	case email != "":
		enrollments, err := h.enrollmentSvc.ListByEmail(c.Request.Context(), email)
		if err != nil {
			h.handleEnrollmentError(c, err)
			return
		}
		response.OKCount(c, enrollments, len(enrollments))
	default:
		enrollments, err := h.enrollmentSvc.ListAll(c.Request.Context())
		if err != nil {
			h.handleEnrollmentError(c, err)
			return
		}
		response.OKCount(c, enrollments, len(enrollments))
	}
}

// CancelEnrollment withdraws a person from an activity.
// DELETE /api/enrollments?activityCode=...&email=...
func (h *EnrollmentHandler) CancelEnrollment(c *gin.Context) {
	activityCode := c.Query("activityCode")
	email := c.Query("email")
	if activityCode == "" || email == "" {
		response.BadRequest(c, "activityCode and email query parameters are required")
		return
	}

	if err := h.enrollmentSvc.Cancel(c.Request.Context(), activityCode, email); err != nil {
		h.handleEnrollmentError(c, err)
		return
	}

	response.OKWithMessage(c, nil, "Enrollment cancelled")
}

// EnrollmentFeed serves a member's enrollments as an iCalendar file.
// GET /api/enrollments/feed.ics?email=...
func (h *EnrollmentHandler) EnrollmentFeed(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.BadRequest(c, "email query parameter is required")
		return
	}

	feed, err := h.feedSvc.EnrollmentsICS(c.Request.Context(), email)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="enrollments.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *EnrollmentHandler) handleEnrollmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityFull):
		response.Reject(c, "ACTIVITY_FULL", "This activity has reached its capacity")
	case errors.Is(err, service.ErrAlreadyEnrolled):
		response.Reject(c, "ALREADY_ENROLLED", "This email is already enrolled in the activity")
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, "Activity not found")
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.NotFound(c, "Enrollment not found")
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPhone):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
