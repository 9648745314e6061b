package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/model"
)

// RatingAggregate is one resource's rating summary.
type RatingAggregate struct {
	ResourceID    string
	AverageRating float64
	TotalRatings  int
}

// RatingRepository persists anonymous resource ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *model.SimpleRating) error
	Summarize(ctx context.Context, resourceID string) (*RatingAggregate, error)
	SummarizeAll(ctx context.Context) ([]RatingAggregate, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *model.SimpleRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Summarize(ctx context.Context, resourceID string) (*RatingAggregate, error) {
	var agg RatingAggregate
	err := r.db.WithContext(ctx).
		Model(&model.SimpleRating{}).
		Select("resource_id, COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_ratings").
		Where("resource_id = ?", resourceID).
		Group("resource_id").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	// No rows grouped means no ratings yet; return an empty summary.
	if agg.ResourceID == "" {
		agg.ResourceID = resourceID
	}
	return &agg, nil
}

func (r *ratingRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SimpleRating{})
	return result.RowsAffected, result.Error
}

func (r *ratingRepository) SummarizeAll(ctx context.Context) ([]RatingAggregate, error) {
	var aggs []RatingAggregate
	err := r.db.WithContext(ctx).
		Model(&model.SimpleRating{}).
		Select("resource_id, AVG(rating) AS average_rating, COUNT(*) AS total_ratings").
		Group("resource_id").
		Order("resource_id ASC").
		Scan(&aggs).Error
	return aggs, err
}
