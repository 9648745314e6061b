package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// ── enrollment business errors ──

var (
	ErrActivityNotFound   = errors.New("activity not found")
	ErrActivityFull       = errors.New("activity is at capacity")
	ErrAlreadyEnrolled    = errors.New("email already enrolled in this activity")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EnrollmentService manages the enrollment ledger.
type EnrollmentService interface {
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.CreateEnrollmentResponse, error)
	ListByActivity(ctx context.Context, activityCode string) ([]dto.EnrollmentResponse, error)
	ListByEmail(ctx context.Context, email string) ([]dto.EnrollmentWithActivity, error)
	ListAll(ctx context.Context) ([]dto.EnrollmentWithActivity, error)
	Cancel(ctx context.Context, activityCode, email string) error
}

type enrollmentService struct {
	repos    *repository.Repositories
	notifier Notifier
	logger   *zap.Logger

	// notifyTimeout bounds the detached confirmation send.
	notifyTimeout time.Duration
}

// NewEnrollmentService creates an EnrollmentService.
func NewEnrollmentService(repos *repository.Repositories, notifier Notifier, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{
		repos:         repos,
		notifier:      notifier,
		logger:        logger,
		notifyTimeout: 30 * time.Second,
	}
}

// ────────────────────── Create ──────────────────────

func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.CreateEnrollmentResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !validPhone(req.PhoneNumber) {
		return nil, ErrInvalidPhone
	}

	enrollment := &model.Enrollment{
		ActivityCode: strings.TrimSpace(req.ActivityCode),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
	}

	if err := s.repos.Enrollment.Admit(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrActivityNotFound
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, ErrActivityFull
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrAlreadyEnrolled
		}
		s.logger.Error("admit enrollment failed",
			zap.String("activityCode", enrollment.ActivityCode), zap.Error(err))
		return nil, err
	}

	s.logger.Info("enrollment created",
		zap.String("activityCode", enrollment.ActivityCode),
		zap.String("enrollmentId", enrollment.ID.String()))

	s.notifyAsync(enrollment)

	// The caller gets the count recomputed from the ledger, never the
	// stored counter column.
	row, err := s.repos.Activity.GetWithCount(ctx, enrollment.ActivityCode)
	if err != nil {
		s.logger.Error("recount after enrollment failed",
			zap.String("activityCode", enrollment.ActivityCode), zap.Error(err))
		return nil, err
	}

	return &dto.CreateEnrollmentResponse{
		EnrollmentResponse: *toEnrollmentResponse(enrollment),
		NumOfEnrollments:   row.EnrollmentCount,
	}, nil
}

// notifyAsync fires the confirmation email after the enrollment is
// committed. It deliberately detaches from the request context so a
// closed HTTP connection cannot cancel delivery.
func (s *enrollmentService) notifyAsync(enrollment *model.Enrollment) {
	activity, err := s.repos.Activity.GetByCode(context.Background(), enrollment.ActivityCode)
	if err != nil {
		s.logger.Warn("skip confirmation email, activity lookup failed",
			zap.String("activityCode", enrollment.ActivityCode), zap.Error(err))
		return
	}

	notice := EnrollmentNotice{
		To:           enrollment.Email,
		FirstName:    enrollment.FirstName,
		LastName:     enrollment.LastName,
		ActivityCode: activity.Code,
		ActivityName: activity.Name,
		ActivityType: activity.Type,
		Description:  activity.Description,
		Date:         activity.Date,
		Time:         activity.Time,
		Location:     activity.Location,
	}
	if addr, err := s.repos.Address.GetByLocation(context.Background(), activity.Location); err == nil {
		notice.Address = addr.FullAddress()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		s.notifier.SendEnrollmentConfirmation(ctx, notice)
	}()
}

// validPhone accepts numbers with at least nine digits after common
// formatting characters are stripped.
func validPhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "(", "", ")", "", "-", "", "+", "").Replace(phone)
	if len(cleaned) < 9 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ────────────────────── ListByActivity ──────────────────────

func (s *enrollmentService) ListByActivity(ctx context.Context, activityCode string) ([]dto.EnrollmentResponse, error) {
	if _, err := s.repos.Activity.GetByCode(ctx, activityCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	enrollments, err := s.repos.Enrollment.ListByActivity(ctx, activityCode)
	if err != nil {
		s.logger.Error("list enrollments failed",
			zap.String("activityCode", activityCode), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		result = append(result, *toEnrollmentResponse(&enrollments[i]))
	}
	return result, nil
}

// ────────────────────── ListByEmail ──────────────────────

func (s *enrollmentService) ListByEmail(ctx context.Context, email string) ([]dto.EnrollmentWithActivity, error) {
	enrollments, err := s.repos.Enrollment.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("list enrollments by email failed", zap.Error(err))
		return nil, err
	}

	return s.withActivityDetails(ctx, enrollments), nil
}

// ────────────────────── ListAll ──────────────────────

func (s *enrollmentService) ListAll(ctx context.Context) ([]dto.EnrollmentWithActivity, error) {
	enrollments, err := s.repos.Enrollment.ListAll(ctx)
	if err != nil {
		s.logger.Error("list all enrollments failed", zap.Error(err))
		return nil, err
	}

	return s.withActivityDetails(ctx, enrollments), nil
}

func (s *enrollmentService) withActivityDetails(ctx context.Context, enrollments []model.Enrollment) []dto.EnrollmentWithActivity {
	result := make([]dto.EnrollmentWithActivity, 0, len(enrollments))
	for i := range enrollments {
		item := dto.EnrollmentWithActivity{
			EnrollmentResponse: *toEnrollmentResponse(&enrollments[i]),
		}
		if activity, err := s.repos.Activity.GetByCode(ctx, enrollments[i].ActivityCode); err == nil {
			item.ActivityName = activity.Name
			item.Date = activity.Date
			item.Time = activity.Time
			item.Location = activity.Location
			item.Type = activity.Type
		}
		result = append(result, item)
	}
	return result
}

// ────────────────────── Cancel ──────────────────────

func (s *enrollmentService) Cancel(ctx context.Context, activityCode, email string) error {
	affected, err := s.repos.Enrollment.Delete(ctx, activityCode, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		s.logger.Error("cancel enrollment failed",
			zap.String("activityCode", activityCode), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrEnrollmentNotFound
	}

	s.logger.Info("enrollment cancelled", zap.String("activityCode", activityCode))
	return nil
}

func toEnrollmentResponse(e *model.Enrollment) *dto.EnrollmentResponse {
	return &dto.EnrollmentResponse{
		ID:           e.ID.String(),
		ActivityCode: e.ActivityCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
	}
}
