package server

import (
	"commune/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), userID, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.Context(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.postService.DeletePost(c.Context(), userID, c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"msg": "Post deleted"})
}

// LikePost handles PUT /posts/like/:id
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	likes, err := s.postService.LikePost(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(likes)
}

// UnlikePost handles PUT /posts/unlike/:id
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	likes, err := s.postService.UnlikePost(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(likes)
}
