// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// DeclareSkill handles POST /api/profile/skills. A user declares a skill they
// can teach (role "teacher") or want to learn (role "learner"), with a
// proficiency or interest level.
func (s *Server) DeclareSkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		SkillID uint   `json:"skill_id"`
		Role    string `json:"role"`
		Level   int    `json:"level"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var isTeacher bool
	switch req.Role {
	case "teacher":
		isTeacher = true
	case "learner":
		isTeacher = false
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Role must be 'teacher' or 'learner'"))
	}

	if err := validation.ValidateSkillLevel(req.Level); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	profile, err := s.profileService.Declare(c.Context(), userID, req.SkillID, req.Level, isTeacher)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// GetMySkills handles GET /api/profile/skills. The optional "role" query
// parameter filters to teaching or learning declarations; by default both
// are returned.
func (s *Server) GetMySkills(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	return s.respondUserSkills(c, userID)
}

// GetUserSkills handles GET /api/users/:id/skills
func (s *Server) GetUserSkills(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, getErr := s.userService.GetUser(c.Context(), userID); getErr != nil {
		return respondServiceError(c, getErr)
	}
	return s.respondUserSkills(c, userID)
}

func (s *Server) respondUserSkills(c *fiber.Ctx, userID uint) error {
	ctx := c.Context()

	switch c.Query("role") {
	case "teacher":
		profiles, err := s.profileService.ListBy(ctx, userID, true)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(profiles)
	case "learner":
		profiles, err := s.profileService.ListBy(ctx, userID, false)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(profiles)
	case "":
		teaching, err := s.profileService.ListBy(ctx, userID, true)
		if err != nil {
			return respondServiceError(c, err)
		}
		learning, err := s.profileService.ListBy(ctx, userID, false)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"teaching": teaching,
			"learning": learning,
		})
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Role must be 'teacher' or 'learner'"))
	}
}
