package service

import (
	"context"
	"errors"
	"fmt"

	"waxclub/internal/models"
	"waxclub/internal/repository"

	"gorm.io/gorm"
)

// MembershipService implements the join-club workflow and the membership
// predicate the authorization guards rely on.
type MembershipService struct {
	userRepo       repository.UserRepository
	clubRepo       repository.ClubRepository
	membershipRepo repository.MembershipRepository
	invitationRepo repository.InvitationRepository
}

// NewMembershipService returns a new MembershipService.
func NewMembershipService(
	userRepo repository.UserRepository,
	clubRepo repository.ClubRepository,
	membershipRepo repository.MembershipRepository,
	invitationRepo repository.InvitationRepository,
) *MembershipService {
	return &MembershipService{
		userRepo:       userRepo,
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
	}
}

// Join adds the user to the club and returns a success message. The
// existence pre-check produces the friendly error in the common case; a
// concurrent duplicate insert is caught at the store's primary key and
// mapped to the same BadRequest.
func (s *MembershipService) Join(ctx context.Context, username string, clubID uint) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewNotFoundError(fmt.Sprintf("User with username %s not found", username))
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return "", err
	}
	if club == nil {
		return "", models.NewNotFoundError(fmt.Sprintf("Club with ID %d not found.", clubID))
	}

	isMember, err := s.CheckMembership(ctx, username, clubID)
	if err != nil {
		return "", err
	}
	if isMember {
		return "", alreadyInClubError(username, club)
	}

	membership := &models.Membership{Username: username, ClubID: clubID}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", alreadyInClubError(username, club)
		}
		return "", err
	}

	return fmt.Sprintf("User %s has successfully joined club %s (ID: %d)", username, club.Name, clubID), nil
}

func alreadyInClubError(username string, club *models.Club) error {
	return models.NewValidationError(
		fmt.Sprintf("User %s is already in club %s (ID: %d)", username, club.Name, club.ID))
}

// JoinAndClearInvitations joins the user to the club and then removes any
// outstanding invitation for the pair. Every route that causes a join goes
// through here so no stale invitation survives a successful join.
func (s *MembershipService) JoinAndClearInvitations(ctx context.Context, username string, clubID uint) (string, error) {
	message, err := s.Join(ctx, username, clubID)
	if err != nil {
		return "", err
	}
	if err := s.invitationRepo.Delete(ctx, clubID, username); err != nil {
		return "", err
	}
	return message, nil
}

// AddFounder creates the founder's own membership row immediately after
// club creation and projects the member list onto the club for the
// response.
func (s *MembershipService) AddFounder(ctx context.Context, founder *models.User, club *models.Club) (string, error) {
	membership := &models.Membership{Username: founder.Username, ClubID: club.ID}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return "", err
	}
	club.Members = []models.User{*founder}
	return fmt.Sprintf("Founder %s has successfully joined club %s (ID: %d)", founder.Username, club.Name, club.ID), nil
}

// CheckMembership reports whether a membership row exists for the pair.
func (s *MembershipService) CheckMembership(ctx context.Context, username string, clubID uint) (bool, error) {
	membership, err := s.membershipRepo.Get(ctx, username, clubID)
	if err != nil {
		return false, err
	}
	return membership != nil, nil
}
