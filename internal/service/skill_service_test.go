package service

import (
	"context"
	"testing"

	"skillswap/internal/models"
)

func TestSkillServiceGetOrCreateExisting(t *testing.T) {
	repo := noopSkillRepo()
	repo.getByNameFn = func(_ context.Context, name string) (*models.Skill, error) {
		return &models.Skill{ID: 3, Name: name}, nil
	}

	svc := NewSkillService(repo)
	skill, created, err := svc.GetOrCreate(context.Background(), "Guitar", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected existing skill, not a new one")
	}
	if skill.ID != 3 {
		t.Fatalf("expected existing skill returned, got %+v", skill)
	}
}

func TestSkillServiceGetOrCreateNew(t *testing.T) {
	repo := noopSkillRepo()
	repo.createFn = func(_ context.Context, skill *models.Skill) error {
		skill.ID = 8
		return nil
	}

	svc := NewSkillService(repo)
	skill, created, err := svc.GetOrCreate(context.Background(), "Pottery", "Wheel throwing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected a newly created skill")
	}
	if skill.ID != 8 || skill.Name != "Pottery" {
		t.Fatalf("unexpected skill: %+v", skill)
	}
}

func TestSkillServiceGetOrCreateLosesRace(t *testing.T) {
	// Create hits the unique index because another request inserted the same
	// name first; the winner's row is returned.
	repo := noopSkillRepo()
	calls := 0
	repo.getByNameFn = func(_ context.Context, name string) (*models.Skill, error) {
		calls++
		if calls == 1 {
			return nil, nil
		}
		return &models.Skill{ID: 12, Name: name}, nil
	}
	repo.createFn = func(context.Context, *models.Skill) error {
		return models.NewConflictError("Skill already exists")
	}

	svc := NewSkillService(repo)
	skill, created, err := svc.GetOrCreate(context.Background(), "Chess", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected the racing winner's skill, not a new one")
	}
	if skill.ID != 12 {
		t.Fatalf("expected winner's skill, got %+v", skill)
	}
}
