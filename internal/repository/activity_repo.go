package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/model"
)

// ActivityWithCount is an activity row annotated with its live
// enrollment count.
type ActivityWithCount struct {
	model.Activity
	EnrollmentCount int
}

// ActivityRepository persists activities. Enrollment counts are always
// derived from the enrollments table, never from the stored counter.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByCode(ctx context.Context, code string) (*model.Activity, error)
	ListWithCounts(ctx context.Context) ([]ActivityWithCount, error)
	GetWithCount(ctx context.Context, code string) (*ActivityWithCount, error)
	Update(ctx context.Context, activity *model.Activity) error
	DeleteByCode(ctx context.Context, code string) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetByCode(ctx context.Context, code string) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListWithCounts(ctx context.Context) ([]ActivityWithCount, error) {
	var rows []ActivityWithCount
	err := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Select("activities.*, COALESCE(e.cnt, 0) AS enrollment_count").
		Joins("LEFT JOIN (SELECT activity_code, COUNT(*) AS cnt FROM enrollments GROUP BY activity_code) e ON e.activity_code = activities.code").
		Order("activities.date ASC, activities.time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *activityRepository) GetWithCount(ctx context.Context, code string) (*ActivityWithCount, error) {
	activity, err := r.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("activity_code = ?", code).
		Count(&count).Error; err != nil {
		return nil, err
	}

	return &ActivityWithCount{Activity: *activity, EnrollmentCount: int(count)}, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

// DeleteByCode removes an activity; enrollments follow via the
// ON DELETE CASCADE foreign key.
func (r *activityRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	result := r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Activity{})
	return result.RowsAffected, result.Error
}
