package service

import (
	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/config"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// Service is the aggregate entry point for all business services.
type Service struct {
	Availability AvailabilityService
	Activity     ActivityService
	Enrollment   EnrollmentService
	Resource     ResourceService
	Rating       RatingService
	Comment      CommentService
	Statistics   StatisticsService
	Export       ExportService
	Feed         FeedService
	Seed         SeedService
}

// NewService wires every service over the shared repositories.
// calendarAPI may be nil when calendar credentials are not configured;
// notifier is never nil (an unconfigured mailer reports "skipped").
func NewService(
	cfg *config.Config,
	repos *repository.Repositories,
	calendarAPI CalendarAPI,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	return &Service{
		Availability: NewAvailabilityService(&cfg.Calendar, calendarAPI, logger),
		Activity:     NewActivityService(repos, logger),
		Enrollment:   NewEnrollmentService(repos, notifier, logger),
		Resource:     NewResourceService(repos, logger),
		Rating:       NewRatingService(repos, logger),
		Comment:      NewCommentService(repos, logger),
		Statistics:   NewStatisticsService(repos, logger),
		Export:       NewExportService(repos, logger),
		Feed:         NewFeedService(repos, logger),
		Seed:         NewSeedService(repos, logger),
	}
}
