package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// ── activity business errors ──

var (
	ErrDuplicateActivityCode = errors.New("activity code already exists")
	ErrUnknownLocation       = errors.New("unknown location")
	ErrUnknownActivityType   = errors.New("unknown activity type")
	ErrInvalidCapacity       = errors.New("availability must not be negative")
)

// The hub's fixed locations and activity types.
var (
	Locations     = []string{"CBD", "Fitzroy", "St Kilda"}
	ActivityTypes = []string{"workshop", "talk", "socialising", "just for fun"}
)

// ActivityService manages the activity catalogue.
type ActivityService interface {
	Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	GetByCode(ctx context.Context, code string) (*dto.ActivityResponse, error)
	List(ctx context.Context) ([]dto.ActivityResponse, error)
	Update(ctx context.Context, code string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	Delete(ctx context.Context, code string) error
}

type activityService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewActivityService creates an ActivityService.
func NewActivityService(repos *repository.Repositories, logger *zap.Logger) ActivityService {
	return &activityService{repos: repos, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *activityService) Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if !contains(Locations, req.Location) {
		return nil, ErrUnknownLocation
	}
	if !contains(ActivityTypes, req.Type) {
		return nil, ErrUnknownActivityType
	}
	// Zero is a valid capacity: the activity exists but nobody can
	// enroll until it is raised.
	if req.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	activity := &model.Activity{
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Description: req.Description,
	}

	if err := s.repos.Activity.Create(ctx, activity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateActivityCode
		}
		s.logger.Error("create activity failed", zap.String("code", activity.Code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("activity created", zap.String("code", activity.Code))

	return s.toResponse(ctx, &repository.ActivityWithCount{Activity: *activity}), nil
}

// ────────────────────── GetByCode ──────────────────────

func (s *activityService) GetByCode(ctx context.Context, code string) (*dto.ActivityResponse, error) {
	row, err := s.repos.Activity.GetWithCount(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("get activity failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, row), nil
}

// ────────────────────── List ──────────────────────

func (s *activityService) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	rows, err := s.repos.Activity.ListWithCounts(ctx)
	if err != nil {
		s.logger.Error("list activities failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ActivityResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *s.toResponse(ctx, &rows[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *activityService) Update(ctx context.Context, code string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	activity, err := s.repos.Activity.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if req.Time != nil {
		activity.Time = *req.Time
	}
	if req.Location != nil {
		if !contains(Locations, *req.Location) {
			return nil, ErrUnknownLocation
		}
		activity.Location = *req.Location
	}
	if req.Type != nil {
		if !contains(ActivityTypes, *req.Type) {
			return nil, ErrUnknownActivityType
		}
		activity.Type = *req.Type
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, ErrInvalidCapacity
		}
		activity.Capacity = *req.Capacity
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}

	if err := s.repos.Activity.Update(ctx, activity); err != nil {
		s.logger.Error("update activity failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("activity updated", zap.String("code", code))

	return s.GetByCode(ctx, code)
}

// ────────────────────── Delete ──────────────────────

// Delete removes the activity; its enrollments go with it through the
// database cascade.
func (s *activityService) Delete(ctx context.Context, code string) error {
	affected, err := s.repos.Activity.DeleteByCode(ctx, code)
	if err != nil {
		s.logger.Error("delete activity failed", zap.String("code", code), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrActivityNotFound
	}

	s.logger.Info("activity deleted", zap.String("code", code))
	return nil
}

func (s *activityService) toResponse(ctx context.Context, row *repository.ActivityWithCount) *dto.ActivityResponse {
	resp := &dto.ActivityResponse{
		Code:             row.Code,
		Name:             row.Name,
		Date:             row.Date,
		Time:             row.Time,
		Location:         row.Location,
		Type:             row.Type,
		Capacity:         row.Capacity,
		Description:      row.Description,
		NumOfEnrollments: row.EnrollmentCount,
	}

	if address, err := s.repos.Address.GetByLocation(ctx, row.Location); err == nil {
		resp.Address = &dto.AddressResponse{
			AddressLine: address.AddressLine,
			Suburb:      address.Suburb,
			State:       address.State,
			Postcode:    address.Postcode,
			Country:     address.Country,
		}
	}

	return resp
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
