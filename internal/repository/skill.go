package repository

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for the skill catalog.
type SkillRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	List(ctx context.Context) ([]models.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	key := cache.SkillKey(id)

	err := cache.Aside(ctx, key, &skill, cache.SkillTTL, func() error {
		if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Skill", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetByName performs a case-sensitive exact-match lookup.
// Returns (nil, nil) when no skill with that name exists.
func (r *skillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Skill already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateSkills(ctx)
	return nil
}

func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill

	err := cache.Aside(ctx, cache.SkillListKey, &skills, cache.SkillListTTL, func() error {
		if err := r.db.WithContext(ctx).Order("name").Find(&skills).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skills, nil
}
