package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// ResourceRepository defines persistence operations for shared resources.
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id uint) (*models.Resource, error)
	ListBySkills(ctx context.Context, skillIDs []uint) ([]models.Resource, error)
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository returns a new ResourceRepository implementation.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	if err := r.db.WithContext(ctx).Create(resource).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *resourceRepository) GetByID(ctx context.Context, id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.WithContext(ctx).
		Preload("Skill").
		Preload("User").
		First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Resource", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &resource, nil
}

// ListBySkills returns every resource tagged with one of the given skills,
// newest first. An empty id set yields an empty list without querying.
func (r *resourceRepository) ListBySkills(ctx context.Context, skillIDs []uint) ([]models.Resource, error) {
	if len(skillIDs) == 0 {
		return []models.Resource{}, nil
	}

	var resources []models.Resource
	if err := r.db.WithContext(ctx).
		Where("skill_id IN ?", skillIDs).
		Preload("Skill").
		Preload("User").
		Order("created_at DESC").
		Find(&resources).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return resources, nil
}
