package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// ResourceService manages the resource board: skill-tagged learning
// resources shared between users.
type ResourceService struct {
	resourceRepo repository.ResourceRepository
	profileRepo  repository.ProfileRepository
	skillRepo    repository.SkillRepository
}

// NewResourceService returns a new ResourceService.
func NewResourceService(
	resourceRepo repository.ResourceRepository,
	profileRepo repository.ProfileRepository,
	skillRepo repository.SkillRepository,
) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		profileRepo:  profileRepo,
		skillRepo:    skillRepo,
	}
}

// Share publishes a resource tagged with one skill. The skill must exist;
// duplicate titles are allowed and resources are immutable once created.
func (s *ResourceService) Share(ctx context.Context, userID, skillID uint, title, description, url string) (*models.Resource, error) {
	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return nil, err
	}

	resource := &models.Resource{
		Title:       title,
		Description: description,
		URL:         url,
		SkillID:     skillID,
		UserID:      userID,
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}
	return s.resourceRepo.GetByID(ctx, resource.ID)
}

// ListForSkill returns the resources tagged with one skill, newest first.
func (s *ResourceService) ListForSkill(ctx context.Context, skillID uint) ([]models.Resource, error) {
	if _, err := s.skillRepo.GetByID(ctx, skillID); err != nil {
		return nil, err
	}
	return s.resourceRepo.ListBySkills(ctx, []uint{skillID})
}

// ListRelevant returns resources tagged with any skill the user has declared,
// as teacher or learner. A user with no declared skills sees an empty board.
func (s *ResourceService) ListRelevant(ctx context.Context, userID uint) ([]models.Resource, error) {
	skillIDs, err := s.profileRepo.SkillIDsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resourceRepo.ListBySkills(ctx, skillIDs)
}
