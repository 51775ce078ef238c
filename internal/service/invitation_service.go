package service

import (
	"context"
	"errors"
	"fmt"

	"waxclub/internal/models"
	"waxclub/internal/repository"

	"gorm.io/gorm"
)

// InvitationService issues and revokes club invitations.
type InvitationService struct {
	userRepo       repository.UserRepository
	clubRepo       repository.ClubRepository
	membershipRepo repository.MembershipRepository
	invitationRepo repository.InvitationRepository
}

// NewInvitationService returns a new InvitationService.
func NewInvitationService(
	userRepo repository.UserRepository,
	clubRepo repository.ClubRepository,
	membershipRepo repository.MembershipRepository,
	invitationRepo repository.InvitationRepository,
) *InvitationService {
	return &InvitationService{
		userRepo:       userRepo,
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
	}
}

// Create issues an invitation from inviter to invitee for the given club.
// The checks run in a fixed order and the first failure wins, which decides
// the error message the caller observes: club exists, inviter is a member,
// invitee exists, invitee is not a member, invitee is not already invited.
func (s *InvitationService) Create(ctx context.Context, inviter string, clubID uint, invitee string) (*models.Invitation, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("No club found with ID %d", clubID))
	}

	inviterMembership, err := s.membershipRepo.Get(ctx, inviter, club.ID)
	if err != nil {
		return nil, err
	}
	if inviterMembership == nil {
		return nil, models.NewUnauthorizedError("Unauthorized: unable to send invitation to club you are not a member of.")
	}

	invitedUser, err := s.userRepo.GetByUsername(ctx, invitee)
	if err != nil {
		return nil, err
	}
	if invitedUser == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("User with username %s not found.", invitee))
	}

	inviteeMembership, err := s.membershipRepo.Get(ctx, invitedUser.Username, club.ID)
	if err != nil {
		return nil, err
	}
	if inviteeMembership != nil {
		return nil, models.NewValidationError(
			fmt.Sprintf("User %s is already a member of club %d", invitedUser.Username, club.ID))
	}

	existing, err := s.invitationRepo.Get(ctx, club.ID, invitedUser.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyInvitedError(invitedUser.Username, club.ID)
	}

	invitation := &models.Invitation{
		ClubID:   club.ID,
		Username: invitedUser.Username,
		SentFrom: inviter,
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, alreadyInvitedError(invitedUser.Username, club.ID)
		}
		return nil, err
	}

	return invitation, nil
}

func alreadyInvitedError(username string, clubID uint) error {
	return models.NewValidationError(fmt.Sprintf("User %s already invited to %d", username, clubID))
}

// ListForUser returns the invitations waiting on the given user.
func (s *InvitationService) ListForUser(ctx context.Context, username string) ([]models.Invitation, error) {
	return s.invitationRepo.ListByUsername(ctx, username)
}

// Decline deletes the user's own invitation to the given club.
func (s *InvitationService) Decline(ctx context.Context, username string, clubID uint) (string, error) {
	invitation, err := s.invitationRepo.Get(ctx, clubID, username)
	if err != nil {
		return "", err
	}
	if invitation == nil {
		return "", models.NewNotFoundError(
			fmt.Sprintf("No invitation to club with ID %d found for %s", clubID, username))
	}
	if err := s.invitationRepo.Delete(ctx, clubID, username); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted invitation to club with ID %d for %s", clubID, username), nil
}
