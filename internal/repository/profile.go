package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for declared skill profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.SkillProfile) error
	GetByID(ctx context.Context, id uint) (*models.SkillProfile, error)
	GetByTriple(ctx context.Context, userID, skillID uint, isTeacher bool) (*models.SkillProfile, error)
	ListByUser(ctx context.Context, userID uint, isTeacher bool) ([]models.SkillProfile, error)
	ListBySkill(ctx context.Context, skillID uint, isTeacher bool) ([]models.SkillProfile, error)
	SkillIDsForUser(ctx context.Context, userID uint) ([]uint, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *models.SkillProfile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Skill already declared for this role")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.SkillProfile, error) {
	var profile models.SkillProfile
	if err := r.db.WithContext(ctx).Preload("Skill").First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("SkillProfile", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// GetByTriple looks up the unique (user, skill, role) profile.
// Returns (nil, nil) when no such profile exists.
func (r *profileRepository) GetByTriple(ctx context.Context, userID, skillID uint, isTeacher bool) (*models.SkillProfile, error) {
	var profile models.SkillProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND skill_id = ? AND is_teacher = ?", userID, skillID, isTeacher).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) ListByUser(ctx context.Context, userID uint, isTeacher bool) ([]models.SkillProfile, error) {
	var profiles []models.SkillProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_teacher = ?", userID, isTeacher).
		Preload("Skill").
		Order("created_at").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) ListBySkill(ctx context.Context, skillID uint, isTeacher bool) ([]models.SkillProfile, error) {
	var profiles []models.SkillProfile
	if err := r.db.WithContext(ctx).
		Where("skill_id = ? AND is_teacher = ?", skillID, isTeacher).
		Preload("User").
		Order("level DESC").
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

// SkillIDsForUser returns the distinct skill ids the user has declared in
// either role. Used to surface relevant resources.
func (r *profileRepository) SkillIDsForUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.SkillProfile{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("skill_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
