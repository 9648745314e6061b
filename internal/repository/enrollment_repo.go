package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kwon0144/HarborHub/internal/model"
)

// ErrCapacityReached is returned by Admit when the activity has no
// seats left at commit time.
var ErrCapacityReached = errors.New("activity capacity reached")

// EnrollmentRepository persists enrollments. Admit is the only write
// path that creates them, so the capacity invariant is enforced there.
type EnrollmentRepository interface {
	// Admit inserts an enrollment while holding a row lock on the
	// activity, so concurrent admissions against the same activity
	// serialize and the capacity check stays accurate.
	// Returns gorm.ErrRecordNotFound when the activity does not exist,
	// ErrCapacityReached when it is full, and gorm.ErrDuplicatedKey
	// when (activity_code, email) already exists.
	Admit(ctx context.Context, enrollment *model.Enrollment) error
	ListByActivity(ctx context.Context, activityCode string) ([]model.Enrollment, error)
	ListByEmail(ctx context.Context, email string) ([]model.Enrollment, error)
	ListAll(ctx context.Context) ([]model.Enrollment, error)
	Delete(ctx context.Context, activityCode, email string) (int64, error)
	// TrendByMonth counts enrollments grouped by the month of their
	// activity's date, oldest first.
	TrendByMonth(ctx context.Context) ([]MonthCount, error)
}

// MonthCount is one month's enrollment total, month as "YYYY-MM".
type MonthCount struct {
	Month string
	Count int
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Admit(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", enrollment.ActivityCode).
			First(&activity).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Enrollment{}).
			Where("activity_code = ?", enrollment.ActivityCode).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(activity.Capacity) {
			return ErrCapacityReached
		}

		return tx.Create(enrollment).Error
	})
}

func (r *enrollmentRepository) ListByActivity(ctx context.Context, activityCode string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("activity_code = ?", activityCode).
		Order("last_name ASC, first_name ASC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) ListByEmail(ctx context.Context, email string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) ListAll(ctx context.Context) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Order("activity_code ASC, last_name ASC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) TrendByMonth(ctx context.Context) ([]MonthCount, error) {
	var rows []MonthCount
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Select("to_char(activities.date, 'YYYY-MM') AS month, COUNT(*) AS count").
		Joins("JOIN activities ON activities.code = enrollments.activity_code").
		Group("to_char(activities.date, 'YYYY-MM')").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *enrollmentRepository) Delete(ctx context.Context, activityCode, email string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("activity_code = ? AND email = ?", activityCode, email).
		Delete(&model.Enrollment{})
	return result.RowsAffected, result.Error
}
