package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/repository"
)

// FeedService renders a member's enrollments as an iCalendar feed they
// can subscribe to from their own calendar app.
type FeedService interface {
	EnrollmentsICS(ctx context.Context, email string) (string, error)
}

type feedService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewFeedService creates a FeedService.
func NewFeedService(repos *repository.Repositories, logger *zap.Logger) FeedService {
	return &feedService{repos: repos, logger: logger}
}

func (s *feedService) EnrollmentsICS(ctx context.Context, email string) (string, error) {
	enrollments, err := s.repos.Enrollment.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("list enrollments for feed failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Harbor Hub//Enrollments//EN")

	now := time.Now()
	for i := range enrollments {
		e := &enrollments[i]
		activity, err := s.repos.Activity.GetByCode(ctx, e.ActivityCode)
		if err != nil {
			// Orphaned rows should not break the whole feed.
			s.logger.Warn("skip feed entry, activity lookup failed",
				zap.String("activityCode", e.ActivityCode), zap.Error(err))
			continue
		}

		start, ok := parseActivityStart(activity.Date, activity.Time)
		if !ok {
			s.logger.Warn("skip feed entry, unparseable schedule",
				zap.String("activityCode", e.ActivityCode),
				zap.String("date", activity.Date),
				zap.String("time", activity.Time))
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s@harborhub", activity.Code, e.ID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Hour))
		event.SetSummary(activity.Name)
		event.SetLocation(activity.Location)
		if activity.Description != "" {
			event.SetDescription(activity.Description)
		}
	}

	return cal.Serialize(), nil
}

// parseActivityStart combines the catalogue's date and free-text time
// columns into a concrete start. Accepts "15:04" and "3:04 PM" forms;
// ranges like "10:00 AM - 11:00 AM" use the left side.
func parseActivityStart(date, timeOfDay string) (time.Time, bool) {
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		loc = time.UTC
	}

	first := timeOfDay
	if idx := strings.Index(timeOfDay, "-"); idx > 0 {
		first = timeOfDay[:idx]
	}
	first = strings.TrimSpace(first)

	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 3:04 PM", "2006-01-02 3:04PM"} {
		if t, err := time.ParseInLocation(layout, date+" "+first, loc); err == nil {
			return t, true
		}
	}

	// Date without a usable time still yields a morning placeholder.
	if t, err := time.ParseInLocation("2006-01-02", date, loc); err == nil {
		return t.Add(9 * time.Hour), true
	}

	return time.Time{}, false
}
