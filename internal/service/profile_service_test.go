package service

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/models"
)

func TestProfileServiceDeclare(t *testing.T) {
	repo := noopProfileRepo()
	var created *models.SkillProfile
	repo.createFn = func(_ context.Context, profile *models.SkillProfile) error {
		profile.ID = 4
		created = profile
		return nil
	}
	repo.getByIDFn = func(context.Context, uint) (*models.SkillProfile, error) {
		return created, nil
	}

	svc := NewProfileService(repo, noopSkillRepo())
	profile, err := svc.Declare(context.Background(), 1, 7, 3, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !profile.IsTeacher || profile.Level != 3 || profile.SkillID != 7 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestProfileServiceDeclareLevelOutOfRange(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), noopSkillRepo())
	for _, level := range []int{0, 6, -1} {
		_, err := svc.Declare(context.Background(), 1, 7, level, false)
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
			t.Fatalf("level %d: expected validation app error, got %#v", level, err)
		}
	}
}

func TestProfileServiceDeclareUnknownSkill(t *testing.T) {
	skillRepo := noopSkillRepo()
	skillRepo.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
		return nil, models.NewNotFoundError("Skill", id)
	}

	svc := NewProfileService(noopProfileRepo(), skillRepo)
	_, err := svc.Declare(context.Background(), 1, 7, 3, true)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestProfileServiceDeclareTwice(t *testing.T) {
	repo := noopProfileRepo()
	repo.getByTripleFn = func(context.Context, uint, uint, bool) (*models.SkillProfile, error) {
		return &models.SkillProfile{ID: 9}, nil
	}

	svc := NewProfileService(repo, noopSkillRepo())
	_, err := svc.Declare(context.Background(), 1, 7, 3, true)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeConflict {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestProfileServiceFindBySkillUnknownSkill(t *testing.T) {
	skillRepo := noopSkillRepo()
	skillRepo.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
		return nil, models.NewNotFoundError("Skill", id)
	}

	svc := NewProfileService(noopProfileRepo(), skillRepo)
	_, err := svc.FindBySkill(context.Background(), 7, true)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}
