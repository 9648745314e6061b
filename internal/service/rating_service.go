package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// ── rating business errors ──

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrRatingNotFound   = errors.New("rating not found")
)

// RatingService records and summarizes anonymous resource ratings.
type RatingService interface {
	Create(ctx context.Context, req *dto.CreateRatingRequest) (*dto.RatingSummary, error)
	Summary(ctx context.Context, resourceID string) (*dto.RatingSummary, error)
	SummaryAll(ctx context.Context) ([]dto.RatingSummary, error)
	Delete(ctx context.Context, id string) error
}

type ratingService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewRatingService creates a RatingService.
func NewRatingService(repos *repository.Repositories, logger *zap.Logger) RatingService {
	return &ratingService{repos: repos, logger: logger}
}

func (s *ratingService) Create(ctx context.Context, req *dto.CreateRatingRequest) (*dto.RatingSummary, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	exists, err := s.repos.Resource.Exists(ctx, req.ResourceID)
	if err != nil {
		s.logger.Error("check resource failed", zap.String("resourceId", req.ResourceID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrResourceNotFound
	}

	rating := &model.SimpleRating{Rating: req.Rating, ResourceID: req.ResourceID}
	if err := s.repos.Rating.Create(ctx, rating); err != nil {
		s.logger.Error("create rating failed", zap.String("resourceId", req.ResourceID), zap.Error(err))
		return nil, err
	}

	return s.Summary(ctx, req.ResourceID)
}

func (s *ratingService) Summary(ctx context.Context, resourceID string) (*dto.RatingSummary, error) {
	agg, err := s.repos.Rating.Summarize(ctx, resourceID)
	if err != nil {
		s.logger.Error("summarize ratings failed", zap.String("resourceId", resourceID), zap.Error(err))
		return nil, err
	}

	return &dto.RatingSummary{
		ResourceID:    agg.ResourceID,
		AverageRating: roundToOneDecimal(agg.AverageRating),
		TotalRatings:  agg.TotalRatings,
	}, nil
}

// SummaryAll aggregates every rated resource.
func (s *ratingService) SummaryAll(ctx context.Context) ([]dto.RatingSummary, error) {
	aggs, err := s.repos.Rating.SummarizeAll(ctx)
	if err != nil {
		s.logger.Error("summarize all ratings failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RatingSummary, 0, len(aggs))
	for _, agg := range aggs {
		result = append(result, dto.RatingSummary{
			ResourceID:    agg.ResourceID,
			AverageRating: roundToOneDecimal(agg.AverageRating),
			TotalRatings:  agg.TotalRatings,
		})
	}
	return result, nil
}

func (s *ratingService) Delete(ctx context.Context, id string) error {
	affected, err := s.repos.Rating.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete rating failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return ErrRatingNotFound
	}
	return nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
