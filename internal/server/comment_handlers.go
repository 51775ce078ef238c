package server

import (
	"fmt"
	"strings"

	"waxclub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type updateCommentRequest struct {
	Comment string `json:"comment"`
}

// UpdateComment replaces a comment's body. The ownership guard has already
// resolved the comment.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	comment := CommentFromCtx(c)

	var req updateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Comment) == "" {
		return models.RespondWithAppError(c, models.NewValidationError("Comment body must not be empty."))
	}

	comment.Body = req.Comment
	if err := s.commentRepo.Update(c.UserContext(), comment); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment removes a comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	comment := CommentFromCtx(c)

	if err := s.commentRepo.Delete(c.UserContext(), comment.ID); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Deleted comment with ID %d.", comment.ID)})
}
