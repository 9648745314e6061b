package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/model"
)

// Resource catalogue type names, matching the table they live in.
const (
	ResourceTypeMeditation = "meditation"
	ResourceTypeExercise   = "exercise"
	ResourceTypeTechnique  = "technique"
)

// CatalogueEntry is a resource row tagged with its catalogue type.
type CatalogueEntry struct {
	ID          string
	Type        string
	Title       string
	Brief       string
	Description string
	Src         string
}

// ResourceRepository reads the three resource catalogues as one.
type ResourceRepository interface {
	ListAll(ctx context.Context) ([]CatalogueEntry, error)
	ListByType(ctx context.Context, resourceType string) ([]CatalogueEntry, error)
	GetByID(ctx context.Context, id string) (*CatalogueEntry, error)
	// Exists reports whether the ID is present in any catalogue.
	Exists(ctx context.Context, id string) (bool, error)
	SeedMeditations(ctx context.Context, rows []model.Meditation) error
	SeedExercises(ctx context.Context, rows []model.Exercise) error
	SeedTechniques(ctx context.Context, rows []model.Technique) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) ListAll(ctx context.Context) ([]CatalogueEntry, error) {
	var out []CatalogueEntry
	for _, t := range []string{ResourceTypeMeditation, ResourceTypeExercise, ResourceTypeTechnique} {
		rows, err := r.ListByType(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

func (r *resourceRepository) ListByType(ctx context.Context, resourceType string) ([]CatalogueEntry, error) {
	var out []CatalogueEntry

	switch resourceType {
	case ResourceTypeMeditation:
		var rows []model.Meditation
		if err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, m := range rows {
			out = append(out, CatalogueEntry{ID: m.ID, Type: resourceType, Title: m.Title, Brief: m.Brief, Description: m.Description, Src: m.Src})
		}
	case ResourceTypeExercise:
		var rows []model.Exercise
		if err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, e := range rows {
			out = append(out, CatalogueEntry{ID: e.ID, Type: resourceType, Title: e.Title, Brief: e.Brief, Description: e.Description, Src: e.Src})
		}
	case ResourceTypeTechnique:
		var rows []model.Technique
		if err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, t := range rows {
			out = append(out, CatalogueEntry{ID: t.ID, Type: resourceType, Title: t.Title, Brief: t.Brief, Description: t.Description, Src: t.Src})
		}
	default:
		return nil, gorm.ErrRecordNotFound
	}

	return out, nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id string) (*CatalogueEntry, error) {
	var m model.Meditation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err == nil {
		return &CatalogueEntry{ID: m.ID, Type: ResourceTypeMeditation, Title: m.Title, Brief: m.Brief, Description: m.Description, Src: m.Src}, nil
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var e model.Exercise
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err == nil {
		return &CatalogueEntry{ID: e.ID, Type: ResourceTypeExercise, Title: e.Title, Brief: e.Brief, Description: e.Description, Src: e.Src}, nil
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var t model.Technique
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &CatalogueEntry{ID: t.ID, Type: ResourceTypeTechnique, Title: t.Title, Brief: t.Brief, Description: t.Description, Src: t.Src}, nil
}

func (r *resourceRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	return false, err
}

func (r *resourceRepository) SeedMeditations(ctx context.Context, rows []model.Meditation) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(&rows).Error
}

func (r *resourceRepository) SeedExercises(ctx context.Context, rows []model.Exercise) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(&rows).Error
}

func (r *resourceRepository) SeedTechniques(ctx context.Context, rows []model.Technique) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(&rows).Error
}
