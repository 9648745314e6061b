package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/gcal"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// CalendarHandler serves slot availability and appointment booking.
type CalendarHandler struct {
	availabilitySvc service.AvailabilityService
}

// availabilityEnvelope carries the slot lists at the top level of the
// body rather than under data; the booking clients read them there.
type availabilityEnvelope struct {
	Success bool `json:"success"`
	dto.AvailabilityResponse
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(availabilitySvc service.AvailabilityService) *CalendarHandler {
	return &CalendarHandler{availabilitySvc: availabilitySvc}
}

// GetAvailability returns the day's slot grid for a location. The day
// can be given as date=YYYY-MM-DD or as separate year/month/day parts.
// GET /api/calendar/availability?date=YYYY-MM-DD&location=CBD
func (h *CalendarHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		year, errY := strconv.Atoi(c.Query("year"))
		month, errM := strconv.Atoi(c.Query("month"))
		day, errD := strconv.Atoi(c.Query("day"))
		if errY != nil || errM != nil || errD != nil {
			response.BadRequest(c, "date or year/month/day query parameters are required")
			return
		}
		date = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}
	location := c.Query("location")
	if location == "" {
		response.BadRequest(c, "location query parameter is required")
		return
	}

	availability, err := h.availabilitySvc.GetDayAvailability(c.Request.Context(), date, location)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, availabilityEnvelope{Success: true, AvailabilityResponse: *availability})
}

// PostAvailability is the body-based form of the same query.
// POST /api/calendar/availability
func (h *CalendarHandler) PostAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "date and location are required")
		return
	}

	availability, err := h.availabilitySvc.GetDayAvailability(c.Request.Context(), req.Date, req.Location)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	c.JSON(http.StatusOK, availabilityEnvelope{Success: true, AvailabilityResponse: *availability})
}

// AddEvent books a one-hour appointment on the location's calendar.
// POST /api/calendar/add-event
func (h *CalendarHandler) AddEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.availabilitySvc.AddEvent(c.Request.Context(), &req)
	if err != nil {
		h.handleCalendarError(c, err)
		return
	}

	response.Created(c, event, "Event created")
}

func (h *CalendarHandler) handleCalendarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidStart):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrSlotTaken):
		response.Conflict(c, "Time slot is no longer available")
	case errors.Is(err, service.ErrCalendarNotConfigured):
		response.ServiceUnavailable(c, "Calendar integration is not configured")
	case errors.Is(err, gcal.ErrAuth):
		response.Unauthorized(c, "Calendar authentication failed")
	case errors.Is(err, gcal.ErrPermission):
		response.Forbidden(c, "Calendar access denied")
	default:
		response.InternalError(c)
	}
}
