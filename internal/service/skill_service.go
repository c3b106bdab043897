package service

import (
	"context"
	"errors"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// SkillService provides skill catalog business logic.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService returns a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// GetOrCreate returns the skill with the given name, creating it on first
// reference. Matching is case-sensitive exact. When the skill already exists
// the stored description is kept, the supplied one is ignored, and created is
// false; callers surface that as a warning rather than a hard error.
func (s *SkillService) GetOrCreate(ctx context.Context, name, description string) (*models.Skill, bool, error) {
	existing, err := s.skillRepo.GetByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	skill := &models.Skill{Name: name, Description: description}
	if createErr := s.skillRepo.Create(ctx, skill); createErr != nil {
		var appErr *models.AppError
		if errors.As(createErr, &appErr) && appErr.Code == models.CodeConflict {
			// Lost a create race; the winner's row is authoritative.
			winner, getErr := s.skillRepo.GetByName(ctx, name)
			if getErr != nil {
				return nil, false, getErr
			}
			if winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, createErr
	}

	return skill, true, nil
}

// GetSkill returns the skill by id.
func (s *SkillService) GetSkill(ctx context.Context, skillID uint) (*models.Skill, error) {
	return s.skillRepo.GetByID(ctx, skillID)
}

// ListSkills returns the full catalog ordered by name.
func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skillRepo.List(ctx)
}
