// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetSkills handles GET /api/skills
func (s *Server) GetSkills(c *fiber.Ctx) error {
	skills, err := s.skillService.ListSkills(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(skills)
}

// GetSkill handles GET /api/skills/:id
func (s *Server) GetSkill(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	skill, getErr := s.skillService.GetSkill(c.Context(), skillID)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	return c.JSON(skill)
}

// CreateSkill handles POST /api/skills. Skill names are shared catalog
// entries: posting an existing name returns the existing skill with 200,
// a new name creates it with 201.
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateSkillName(req.Name); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateDescription(req.Description); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	skill, created, err := s.skillService.GetOrCreate(c.Context(), req.Name, req.Description)
	if err != nil {
		return respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(skill)
}

// GetSkillTeachers handles GET /api/skills/:id/teachers
func (s *Server) GetSkillTeachers(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profiles, findErr := s.profileService.FindBySkill(c.Context(), skillID, true)
	if findErr != nil {
		return respondServiceError(c, findErr)
	}

	return c.JSON(profiles)
}

// GetSkillLearners handles GET /api/skills/:id/learners
func (s *Server) GetSkillLearners(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profiles, findErr := s.profileService.FindBySkill(c.Context(), skillID, false)
	if findErr != nil {
		return respondServiceError(c, findErr)
	}

	return c.JSON(profiles)
}
