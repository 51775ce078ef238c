package server

import (
	"fmt"

	"waxclub/internal/middleware"
	"waxclub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createInvitationRequest struct {
	ClubID   uint   `json:"club_id"`
	Username string `json:"username"`
}

// CreateInvitation invites another user to a club the actor belongs to.
func (s *Server) CreateInvitation(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req createInvitationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	invitation, err := s.invitations.Create(c.UserContext(), actor.Username, req.ClubID, req.Username)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invitation": invitation})
}

// GetMyInvitations lists the actor's open invitations with club details.
func (s *Server) GetMyInvitations(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	invitations, err := s.invitations.ListForUser(c.UserContext(), actor.Username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"invitations": invitations})
}

// AcceptInvitation joins the actor to the club and clears the invitation in
// the same step.
func (s *Server) AcceptInvitation(c *fiber.Ctx) error {
	clubID, ok := parseIDParam(c.Params("clubId"))
	if !ok {
		return models.RespondWithAppError(c, models.NewValidationError("Club ID must be an integer."))
	}
	actor := middleware.ActorFromCtx(c)
	ctx := c.UserContext()

	invitation, err := s.invitationRepo.Get(ctx, clubID, actor.Username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if invitation == nil {
		return models.RespondWithAppError(c, models.NewNotFoundError(
			fmt.Sprintf("No invitation to club with ID %d found for %s", clubID, actor.Username)))
	}

	message, err := s.membership.JoinAndClearInvitations(ctx, actor.Username, clubID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}

// DeclineInvitation deletes the actor's invitation to a club without
// joining it.
func (s *Server) DeclineInvitation(c *fiber.Ctx) error {
	clubID, ok := parseIDParam(c.Params("clubId"))
	if !ok {
		return models.RespondWithAppError(c, models.NewValidationError("Club ID must be an integer."))
	}
	actor := middleware.ActorFromCtx(c)

	message, err := s.invitations.Decline(c.UserContext(), actor.Username, clubID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": message})
}
