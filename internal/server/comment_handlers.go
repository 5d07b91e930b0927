package server

import (
	"commune/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /posts/comment/:id
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comments, err := s.postService.AddComment(c.Context(), userID, c.Params("id"), req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comments)
}

// DeleteComment handles DELETE /posts/comment/:id/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := currentUserID(c)

	comments, err := s.postService.DeleteComment(c.Context(), userID, c.Params("id"), c.Params("commentId"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comments)
}
