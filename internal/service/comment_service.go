package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/model"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// ── comment business errors ──

var (
	ErrCommentEmpty   = errors.New("comment must not be empty")
	ErrCommentTooLong = errors.New("comment exceeds 1000 characters")
)

const maxCommentLength = 1000

// CommentService records and lists anonymous resource comments.
type CommentService interface {
	Create(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListByResource(ctx context.Context, resourceID string) ([]dto.CommentResponse, error)
}

type commentService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewCommentService creates a CommentService.
func NewCommentService(repos *repository.Repositories, logger *zap.Logger) CommentService {
	return &commentService{repos: repos, logger: logger}
}

func (s *commentService) Create(ctx context.Context, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return nil, ErrCommentEmpty
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, ErrCommentTooLong
	}

	exists, err := s.repos.Resource.Exists(ctx, req.ResourceID)
	if err != nil {
		s.logger.Error("check resource failed", zap.String("resourceId", req.ResourceID), zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrResourceNotFound
	}

	comment := &model.SimpleComment{Comment: text, ResourceID: req.ResourceID}
	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		s.logger.Error("create comment failed", zap.String("resourceId", req.ResourceID), zap.Error(err))
		return nil, err
	}

	return toCommentResponse(comment), nil
}

func (s *commentService) ListByResource(ctx context.Context, resourceID string) ([]dto.CommentResponse, error) {
	exists, err := s.repos.Resource.Exists(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrResourceNotFound
	}

	comments, err := s.repos.Comment.ListByResource(ctx, resourceID)
	if err != nil {
		s.logger.Error("list comments failed", zap.String("resourceId", resourceID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, *toCommentResponse(&comments[i]))
	}
	return result, nil
}

func toCommentResponse(c *model.SimpleComment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:         c.ID.String(),
		ResourceID: c.ResourceID,
		Comment:    c.Comment,
	}
}
