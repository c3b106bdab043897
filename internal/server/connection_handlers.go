// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"
	"skillswap/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RequestConnection handles POST /api/connections. The acting user requests a
// teaching connection with another user for one skill; the "mode" field says
// which side of it they want to be on.
func (s *Server) RequestConnection(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		UserID  uint   `json:"user_id"`
		SkillID uint   `json:"skill_id"`
		Mode    string `json:"mode"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	mode := models.ConnectionMode(req.Mode)
	if mode != models.ConnectionModeAsLearner && mode != models.ConnectionModeAsTeacher {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Mode must be 'as_learner' or 'as_teacher'"))
	}

	if err := validation.ValidateMessage(req.Message); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	connection, err := s.connectionService.Request(c.Context(), userID, req.UserID, req.SkillID, mode, req.Message)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(connection)
}

// AcceptConnection handles POST /api/connections/:id/accept. Only the
// connection's teacher may accept, and only while it is pending.
func (s *Server) AcceptConnection(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	connectionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	connection, respondErr := s.connectionService.Respond(
		c.Context(), connectionID, userID, service.ConnectionActionAccept)
	if respondErr != nil {
		return respondServiceError(c, respondErr)
	}

	return c.JSON(connection)
}

// RejectConnection handles POST /api/connections/:id/reject. Either party may
// reject a pending request; the row is kept with status "rejected".
func (s *Server) RejectConnection(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	connectionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	connection, respondErr := s.connectionService.Respond(
		c.Context(), connectionID, userID, service.ConnectionActionReject)
	if respondErr != nil {
		return respondServiceError(c, respondErr)
	}

	return c.JSON(connection)
}

// GetConnections handles GET /api/connections, returning the user's
// connections grouped by role plus all accepted ones.
func (s *Server) GetConnections(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	overview, err := s.connectionService.ListFor(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(overview)
}
