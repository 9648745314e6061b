package handler

import (
	"github.com/kwon0144/HarborHub/internal/service"
)

// Handlers is the aggregate entry point for all HTTP handlers.
type Handlers struct {
	Calendar   *CalendarHandler
	Activity   *ActivityHandler
	Enrollment *EnrollmentHandler
	Resource   *ResourceHandler
	Rating     *RatingHandler
	Comment    *CommentHandler
	Statistics *StatisticsHandler
	Admin      *AdminHandler
}

// NewHandlers wires every handler over the service aggregate.
func NewHandlers(svc *service.Service) *Handlers {
	return &Handlers{
		Calendar:   NewCalendarHandler(svc.Availability),
		Activity:   NewActivityHandler(svc.Activity),
		Enrollment: NewEnrollmentHandler(svc.Enrollment, svc.Feed),
		Resource:   NewResourceHandler(svc.Resource),
		Rating:     NewRatingHandler(svc.Rating),
		Comment:    NewCommentHandler(svc.Comment),
		Statistics: NewStatisticsHandler(svc.Statistics),
		Admin:      NewAdminHandler(svc.Seed, svc.Export),
	}
}
