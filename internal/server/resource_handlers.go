// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"skillswap/internal/models"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ShareResource handles POST /api/resources
func (s *Server) ShareResource(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		SkillID     uint   `json:"skill_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateDescription(req.Description); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateURL(req.URL); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	resource, err := s.resourceService.Share(
		c.Context(), userID, req.SkillID, req.Title, req.Description, req.URL)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resource)
}

// GetSkillResources handles GET /api/skills/:id/resources
func (s *Server) GetSkillResources(c *fiber.Ctx) error {
	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	resources, listErr := s.resourceService.ListForSkill(c.Context(), skillID)
	if listErr != nil {
		return respondServiceError(c, listErr)
	}

	return c.JSON(resources)
}

// GetRelevantResources handles GET /api/resources, returning resources tagged
// with any skill the user has declared.
func (s *Server) GetRelevantResources(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	resources, err := s.resourceService.ListRelevant(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(resources)
}
