package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/dto"
	"github.com/kwon0144/HarborHub/internal/repository"
)

// ── resource business errors ──

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrUnknownResourceType = errors.New("unknown resource type")
)

// ResourceService reads the meditation, exercise and technique
// catalogues.
type ResourceService interface {
	List(ctx context.Context, resourceType string) ([]dto.ResourceResponse, error)
	ListGrouped(ctx context.Context) (*dto.GroupedResources, error)
	GetByID(ctx context.Context, id string) (*dto.ResourceResponse, error)
}

type resourceService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewResourceService creates a ResourceService.
func NewResourceService(repos *repository.Repositories, logger *zap.Logger) ResourceService {
	return &resourceService{repos: repos, logger: logger}
}

// List returns resources, optionally filtered to one catalogue.
func (s *resourceService) List(ctx context.Context, resourceType string) ([]dto.ResourceResponse, error) {
	var (
		entries []repository.CatalogueEntry
		err     error
	)

	if resourceType == "" {
		entries, err = s.repos.Resource.ListAll(ctx)
	} else {
		entries, err = s.repos.Resource.ListByType(ctx, resourceType)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownResourceType
		}
	}
	if err != nil {
		s.logger.Error("list resources failed", zap.String("type", resourceType), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ResourceResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, toResourceResponse(e))
	}
	return result, nil
}

// ListGrouped splits the full catalogue by type.
func (s *resourceService) ListGrouped(ctx context.Context) (*dto.GroupedResources, error) {
	entries, err := s.repos.Resource.ListAll(ctx)
	if err != nil {
		s.logger.Error("list resources failed", zap.Error(err))
		return nil, err
	}

	grouped := &dto.GroupedResources{
		Meditations: []dto.ResourceResponse{},
		Exercises:   []dto.ResourceResponse{},
		Techniques:  []dto.ResourceResponse{},
	}
	for _, e := range entries {
		resp := toResourceResponse(e)
		switch e.Type {
		case repository.ResourceTypeMeditation:
			grouped.Meditations = append(grouped.Meditations, resp)
		case repository.ResourceTypeExercise:
			grouped.Exercises = append(grouped.Exercises, resp)
		case repository.ResourceTypeTechnique:
			grouped.Techniques = append(grouped.Techniques, resp)
		}
	}

	return grouped, nil
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*dto.ResourceResponse, error) {
	entry, err := s.repos.Resource.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		s.logger.Error("get resource failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toResourceResponse(*entry)
	return &resp, nil
}

func toResourceResponse(e repository.CatalogueEntry) dto.ResourceResponse {
	return dto.ResourceResponse{
		ID:          e.ID,
		Type:        e.Type,
		Title:       e.Title,
		Brief:       e.Brief,
		Description: e.Description,
		Src:         e.Src,
	}
}
