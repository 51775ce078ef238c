package server

import (
	"fmt"
	"log/slog"

	"waxclub/internal/middleware"
	"waxclub/internal/models"
	"waxclub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type updateUserRequest struct {
	Email         string `json:"email"`
	ProfileImgURL string `json:"profile_img_url"`
}

// GetUsers lists users, filtered by a username fragment when given.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.Search(c.UserContext(), c.Query("username"))
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetUser returns a single user by username.
func (s *Server) GetUser(c *fiber.Ctx) error {
	username := c.Params("username")
	user, err := s.userRepo.GetByUsername(c.UserContext(), username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if user == nil {
		return models.RespondWithAppError(c,
			models.NewNotFoundError(fmt.Sprintf("User %s not found.", username)))
	}
	return c.JSON(fiber.Map{"user": user})
}

// UpdateUser changes a user's email or profile image. Fields absent from
// the body keep their current value.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	username := c.Params("username")
	ctx := c.UserContext()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if user == nil {
		return models.RespondWithAppError(c,
			models.NewNotFoundError(fmt.Sprintf("User %s not found.", username)))
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Email != "" {
		if err := validation.ValidateEmail(req.Email); err != nil {
			return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
		}
		user.Email = req.Email
	}
	if req.ProfileImgURL != "" {
		if err := validation.ValidateImageURL(req.ProfileImgURL); err != nil {
			return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
		}
		user.ProfileImgURL = req.ProfileImgURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Updated user %s.", user.Username),
		"user":    user,
	})
}

// DeleteUser removes a user account.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	ctx := c.UserContext()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if user == nil {
		return models.RespondWithAppError(c,
			models.NewNotFoundError(fmt.Sprintf("User %s not found.", username)))
	}

	if err := s.userRepo.Delete(ctx, username); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(ctx, "user deleted", slog.String("username", username))

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Deleted user %s.", username)})
}

// JoinClub lets a user join a club directly, clearing any open invitation
// to that club in the same step.
func (s *Server) JoinClub(c *fiber.Ctx) error {
	clubID, ok := parseIDParam(c.Params("clubId"))
	if !ok {
		return models.RespondWithAppError(c, models.NewValidationError("Club ID must be an integer."))
	}
	username := c.Params("username")

	message, err := s.membership.JoinAndClearInvitations(c.UserContext(), username, clubID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}
