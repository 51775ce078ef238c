package service

import (
	"context"
	"fmt"
	"time"

	"waxclub/internal/models"
	"waxclub/internal/repository"
)

// ClubService owns the club lifecycle: creation with the founder's
// membership, updates, and deletion with dependent-row cleanup.
type ClubService struct {
	userRepo       repository.UserRepository
	clubRepo       repository.ClubRepository
	membershipRepo repository.MembershipRepository
	invitationRepo repository.InvitationRepository
	postRepo       repository.PostRepository
	membership     *MembershipService
}

// CreateClubInput carries the fields for a new club.
type CreateClubInput struct {
	Name         string
	Description  string
	Founder      string
	IsPublic     bool
	BannerImgURL string
}

// UpdateClubInput carries the mutable club fields; empty strings leave the
// current value in place.
type UpdateClubInput struct {
	Name         string
	Description  string
	BannerImgURL string
}

// NewClubService returns a new ClubService.
func NewClubService(
	userRepo repository.UserRepository,
	clubRepo repository.ClubRepository,
	membershipRepo repository.MembershipRepository,
	invitationRepo repository.InvitationRepository,
	postRepo repository.PostRepository,
	membership *MembershipService,
) *ClubService {
	return &ClubService{
		userRepo:       userRepo,
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		postRepo:       postRepo,
		membership:     membership,
	}
}

// Create validates the founder, inserts the club, and immediately adds the
// founder as its first member.
func (s *ClubService) Create(ctx context.Context, in CreateClubInput) (*models.Club, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Club name is required")
	}

	founder, err := s.userRepo.GetByUsername(ctx, in.Founder)
	if err != nil {
		return nil, err
	}
	if founder == nil {
		return nil, models.NewValidationError(
			fmt.Sprintf("Founder username %s does not match an existing user.", in.Founder))
	}

	club := &models.Club{
		Name:         in.Name,
		Description:  in.Description,
		Founder:      founder.Username,
		IsPublic:     in.IsPublic,
		Founded:      time.Now().UTC(),
		BannerImgURL: in.BannerImgURL,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	if _, err := s.membership.AddFounder(ctx, founder, club); err != nil {
		// The club row and the founder's membership stand or fall together.
		if delErr := s.clubRepo.Delete(ctx, club.ID); delErr != nil {
			return nil, fmt.Errorf("rolling back club %d after failed founder membership: %v: %w", club.ID, delErr, err)
		}
		return nil, err
	}

	return club, nil
}

// Update applies the provided fields to an already-resolved club.
func (s *ClubService) Update(ctx context.Context, club *models.Club, in UpdateClubInput) (string, error) {
	if in.Name != "" {
		club.Name = in.Name
	}
	if in.Description != "" {
		club.Description = in.Description
	}
	if in.BannerImgURL != "" {
		club.BannerImgURL = in.BannerImgURL
	}
	if err := s.clubRepo.Update(ctx, club); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated club %s. (ID: %d)", club.Name, club.ID), nil
}

// Delete removes the club and its dependent posts, memberships, and
// invitations. The rows go in dependency order; no FK cascade is assumed.
func (s *ClubService) Delete(ctx context.Context, club *models.Club) (string, error) {
	if err := s.postRepo.DeleteByClub(ctx, club.ID); err != nil {
		return "", err
	}
	if err := s.invitationRepo.DeleteByClub(ctx, club.ID); err != nil {
		return "", err
	}
	if err := s.membershipRepo.DeleteByClub(ctx, club.ID); err != nil {
		return "", err
	}
	if err := s.clubRepo.Delete(ctx, club.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted club %s. (ID: %d)", club.Name, club.ID), nil
}

// List returns clubs matching the given filters.
func (s *ClubService) List(ctx context.Context, filters repository.ClubFilters) ([]models.Club, error) {
	return s.clubRepo.List(ctx, filters)
}

// GetWithMembers resolves a club and projects its member list.
func (s *ClubService) GetWithMembers(ctx context.Context, clubID uint) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("Club with ID %d not found.", clubID))
	}

	memberships, err := s.membershipRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	members := make([]models.User, 0, len(memberships))
	for _, membership := range memberships {
		if membership.User != nil {
			members = append(members, *membership.User)
		}
	}
	club.Members = members
	return club, nil
}
