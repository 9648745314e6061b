package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// StatisticsService assembles the dashboard aggregates.
type StatisticsService interface {
	Overview(ctx context.Context) (*dto.StatisticsResponse, error)
}

type statisticsService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewStatisticsService creates a StatisticsService.
func NewStatisticsService(repos *repository.Repositories, logger *zap.Logger) StatisticsService {
	return &statisticsService{repos: repos, logger: logger}
}

func (s *statisticsService) Overview(ctx context.Context) (*dto.StatisticsResponse, error) {
	resources, err := s.repos.Resource.ListAll(ctx)
	if err != nil {
		s.logger.Error("list resources failed", zap.Error(err))
		return nil, err
	}

	byID := make(map[string]repository.CatalogueEntry, len(resources))
	idsByType := make(map[string][]string)
	for _, r := range resources {
		byID[r.ID] = r
		idsByType[r.Type] = append(idsByType[r.Type], r.ID)
	}

	aggs, err := s.repos.Rating.SummarizeAll(ctx)
	if err != nil {
		s.logger.Error("summarize ratings failed", zap.Error(err))
		return nil, err
	}

	ratingStats := make([]dto.ResourceRatingStat, 0, len(aggs))
	for _, agg := range aggs {
		stat := dto.ResourceRatingStat{
			ResourceID:    agg.ResourceID,
			AverageRating: roundToOneDecimal(agg.AverageRating),
			TotalRatings:  agg.TotalRatings,
		}
		if r, ok := byID[agg.ResourceID]; ok {
			stat.Title = r.Title
			stat.Type = r.Type
		}
		ratingStats = append(ratingStats, stat)
	}

	trendRows, err := s.repos.Enrollment.TrendByMonth(ctx)
	if err != nil {
		s.logger.Error("enrollment trend query failed", zap.Error(err))
		return nil, err
	}
	trends := make([]dto.EnrollmentTrendStat, 0, len(trendRows))
	for _, row := range trendRows {
		trends = append(trends, dto.EnrollmentTrendStat{Month: row.Month, Count: row.Count})
	}

	commentStats := make([]dto.CommentTypeStat, 0, 3)
	for _, t := range []string{
		repository.ResourceTypeMeditation,
		repository.ResourceTypeExercise,
		repository.ResourceTypeTechnique,
	} {
		count, err := s.repos.Comment.CountByResourceIDs(ctx, idsByType[t])
		if err != nil {
			s.logger.Error("count comments failed", zap.String("type", t), zap.Error(err))
			return nil, err
		}
		commentStats = append(commentStats, dto.CommentTypeStat{Type: t, Count: int(count)})
	}

	return &dto.StatisticsResponse{
		ResourceRatings:  ratingStats,
		EnrollmentTrends: trends,
		CommentsByType:   commentStats,
	}, nil
}
