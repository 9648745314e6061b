package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/model"
)

// CommentRepository persists anonymous resource comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.SimpleComment) error
	ListByResource(ctx context.Context, resourceID string) ([]model.SimpleComment, error)
	CountByResourceIDs(ctx context.Context, resourceIDs []string) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.SimpleComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByResource(ctx context.Context, resourceID string) ([]model.SimpleComment, error) {
	var comments []model.SimpleComment
	err := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByResourceIDs(ctx context.Context, resourceIDs []string) (int64, error) {
	if len(resourceIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SimpleComment{}).
		Where("resource_id IN ?", resourceIDs).
		Count(&count).Error
	return count, err
}
