package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// ProfileService provides skill-profile ledger business logic.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	skillRepo   repository.SkillRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, skillRepo repository.SkillRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
	}
}

// Declare records that the user teaches or wants to learn the skill at the
// given level. At most one profile may exist per (user, skill, role) triple;
// a second declaration of the same triple fails without creating a duplicate.
func (s *ProfileService) Declare(ctx context.Context, userID, skillID uint, level int, isTeacher bool) (*models.SkillProfile, error) {
	if level < models.MinSkillLevel || level > models.MaxSkillLevel {
		return nil, models.NewValidationError("Skill level must be between 1 and 5")
	}

	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.GetByTriple(ctx, userID, skillID, isTeacher)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Skill already declared for this role")
	}

	profile := &models.SkillProfile{
		UserID:    userID,
		SkillID:   skillID,
		Level:     level,
		IsTeacher: isTeacher,
	}
	// A racing declaration of the same triple trips the unique index and
	// comes back as the same conflict error.
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return s.profileRepo.GetByID(ctx, profile.ID)
}

// ListBy returns the user's declared profiles for one role, skill preloaded.
func (s *ProfileService) ListBy(ctx context.Context, userID uint, isTeacher bool) ([]models.SkillProfile, error) {
	return s.profileRepo.ListByUser(ctx, userID, isTeacher)
}

// FindBySkill returns declared teachers (or learners) of a skill for the
// match view, strongest level first.
func (s *ProfileService) FindBySkill(ctx context.Context, skillID uint, wantTeachers bool) ([]models.SkillProfile, error) {
	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return nil, err
	}
	return s.profileRepo.ListBySkill(ctx, skillID, wantTeachers)
}
