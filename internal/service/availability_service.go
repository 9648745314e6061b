package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/config"
	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/pkg/gcal"
)

// ── availability business errors ──

var (
	ErrInvalidDate           = errors.New("date must be YYYY-MM-DD")
	ErrInvalidStart          = errors.New("start must be an RFC3339 timestamp")
	ErrCalendarNotConfigured = errors.New("calendar integration is not configured")
	ErrSlotTaken             = errors.New("requested time slot is no longer free")
)

// Bookable day: eight one-hour slots from 09:00 to 17:00 local time.
const (
	dayStartHour = 9
	dayEndHour   = 17
)

// CalendarAPI is the slice of the calendar client the availability
// engine needs. *gcal.Client satisfies it.
type CalendarAPI interface {
	ListBusy(ctx context.Context, calendarID, timeMin, timeMax, timezone string) ([]gcal.Interval, error)
	IsSlotFree(ctx context.Context, calendarID string, start, end time.Time) (bool, error)
	InsertEvent(ctx context.Context, in gcal.EventInput) (*gcal.Event, error)
}

// AvailabilityService reconciles the hourly slot grid against the
// location's Google Calendar.
type AvailabilityService interface {
	GetDayAvailability(ctx context.Context, date, location string) (*dto.AvailabilityResponse, error)
	AddEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
}

type availabilityService struct {
	cfg    *config.CalendarConfig
	api    CalendarAPI
	logger *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService. api may be nil
// when no calendar credentials are configured; calls then fail with
// ErrCalendarNotConfigured.
func NewAvailabilityService(cfg *config.CalendarConfig, api CalendarAPI, logger *zap.Logger) AvailabilityService {
	return &availabilityService{cfg: cfg, api: api, logger: logger}
}

// ────────────────────── GetDayAvailability ──────────────────────

func (s *availabilityService) GetDayAvailability(ctx context.Context, date, location string) (*dto.AvailabilityResponse, error) {
	if s.api == nil {
		return nil, ErrCalendarNotConfigured
	}

	loc, err := time.LoadLocation(s.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", s.cfg.Timezone, err)
	}

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	calendarID := s.cfg.IDFor(location)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), dayStartHour, 0, 0, 0, loc)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), dayEndHour, 0, 0, 0, loc)

	busy, err := s.api.ListBusy(ctx, calendarID,
		dayStart.Format(time.RFC3339), dayEnd.Format(time.RFC3339), s.cfg.Timezone)
	if err != nil {
		s.logger.Error("list calendar events failed",
			zap.String("location", location), zap.String("date", date), zap.Error(err))
		return nil, err
	}

	allSlots := make([]dto.Slot, 0, dayEndHour-dayStartHour)
	availableSlots := make([]dto.Slot, 0, dayEndHour-dayStartHour)
	for hour := dayStartHour; hour < dayEndHour; hour++ {
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, loc)
		end := start.Add(time.Hour)
		slot := dto.Slot{
			Start:     start.Format(time.RFC3339),
			End:       end.Format(time.RFC3339),
			Available: !slotBooked(start, end, busy),
		}
		allSlots = append(allSlots, slot)
		if slot.Available {
			availableSlots = append(availableSlots, slot)
		}
	}

	busySlots := make([]dto.BusyInterval, 0, len(busy))
	for _, b := range busy {
		busySlots = append(busySlots, dto.BusyInterval{Start: b.Start, End: b.End})
	}

	return &dto.AvailabilityResponse{
		Date:           date,
		Location:       location,
		AllSlots:       allSlots,
		AvailableSlots: availableSlots,
		BusySlots:      busySlots,
	}, nil
}

// slotBooked reports whether a busy interval coincides exactly with the
// slot. Intentionally an exact boundary match, not an overlap test:
// bookings are only ever written on the hourly grid, and ad-hoc events
// that straddle slot boundaries must not hide slots from the booking UI.
func slotBooked(start, end time.Time, busy []gcal.Interval) bool {
	for _, b := range busy {
		bStart, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			continue
		}
		bEnd, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			continue
		}
		if bStart.Equal(start) && bEnd.Equal(end) {
			return true
		}
	}
	return false
}

// ────────────────────── AddEvent ──────────────────────

func (s *availabilityService) AddEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if s.api == nil {
		return nil, ErrCalendarNotConfigured
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, ErrInvalidStart
	}
	end := start.Add(time.Hour)

	calendarID := s.cfg.IDFor(req.Location)

	free, err := s.api.IsSlotFree(ctx, calendarID, start, end)
	if err != nil {
		s.logger.Error("freebusy check failed",
			zap.String("location", req.Location), zap.Error(err))
		return nil, err
	}
	if !free {
		return nil, ErrSlotTaken
	}

	created, err := s.api.InsertEvent(ctx, gcal.EventInput{
		CalendarID:  calendarID,
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       start,
		End:         end,
		Timezone:    s.cfg.Timezone,
		ColorID:     "2",
	})
	if err != nil {
		s.logger.Error("insert calendar event failed",
			zap.String("location", req.Location), zap.Error(err))
		return nil, err
	}

	s.logger.Info("calendar event created",
		zap.String("location", req.Location),
		zap.String("eventId", created.ID))

	return &dto.EventResponse{
		ID:       created.ID,
		HTMLLink: created.HTMLLink,
		Summary:  created.Summary,
		Location: req.Location,
		Start:    created.Start,
		End:      created.End,
	}, nil
}
