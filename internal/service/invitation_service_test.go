package service

import (
	"context"
	"testing"

	"waxclub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// invitationFixture wires a club 4 founded by alice with members alice and
// bob, and users bob and carol. carol is invitable.
func invitationFixture() (*userRepoStub, *clubRepoStub, *membershipRepoStub, *invitationRepoStub) {
	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		switch username {
		case "alice", "bob", "carol":
			return &models.User{Username: username}, nil
		}
		return nil, nil
	}
	clubRepo := noopClubRepo()
	clubRepo.getByIDFn = func(_ context.Context, id uint) (*models.Club, error) {
		if id == 4 {
			return &models.Club{ID: 4, Name: "B-Side Society", Founder: "alice"}, nil
		}
		return nil, nil
	}
	membershipRepo := noopMembershipRepo()
	membershipRepo.getFn = func(_ context.Context, username string, clubID uint) (*models.Membership, error) {
		if clubID == 4 && (username == "alice" || username == "bob") {
			return &models.Membership{Username: username, ClubID: clubID}, nil
		}
		return nil, nil
	}
	return userRepo, clubRepo, membershipRepo, noopInvitationRepo()
}

func TestInvitationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("successful invitation", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		invitation, err := svc.Create(ctx, "alice", 4, "carol")
		require.NoError(t, err)
		assert.Equal(t, uint(4), invitation.ClubID)
		assert.Equal(t, "carol", invitation.Username)
		assert.Equal(t, "alice", invitation.SentFrom)
	})

	t.Run("unknown club short-circuits before everything", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		_, err := svc.Create(ctx, "alice", 40, "carol")
		require.Error(t, err)
		appErr := err.(*models.AppError)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.Equal(t, "No club found with ID 40", appErr.Message)
	})

	t.Run("non-member inviter is rejected", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		_, err := svc.Create(ctx, "carol", 4, "bob")
		require.Error(t, err)
		appErr := err.(*models.AppError)
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "Unauthorized: unable to send invitation to club you are not a member of.", appErr.Message)
	})

	t.Run("unknown invitee", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		_, err := svc.Create(ctx, "alice", 4, "ghost")
		require.Error(t, err)
		appErr := err.(*models.AppError)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.Equal(t, "User with username ghost not found.", appErr.Message)
	})

	t.Run("already-member wins over already-invited", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		// bob is a member AND has a stray invitation row; the member check
		// runs first so its message is the one observed.
		invitationRepo.getFn = func(_ context.Context, clubID uint, username string) (*models.Invitation, error) {
			return &models.Invitation{ClubID: clubID, Username: username}, nil
		}
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		_, err := svc.Create(ctx, "alice", 4, "bob")
		require.Error(t, err)
		appErr := err.(*models.AppError)
		assert.Equal(t, models.CodeValidation, appErr.Code)
		assert.Equal(t, "User bob is already a member of club 4", appErr.Message)
	})

	t.Run("already invited", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		invitationRepo.getFn = func(_ context.Context, clubID uint, username string) (*models.Invitation, error) {
			if clubID == 4 && username == "carol" {
				return &models.Invitation{ClubID: 4, Username: "carol"}, nil
			}
			return nil, nil
		}
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		_, err := svc.Create(ctx, "alice", 4, "carol")
		require.Error(t, err)
		appErr := err.(*models.AppError)
		assert.Equal(t, models.CodeValidation, appErr.Code)
		assert.Equal(t, "User carol already invited to 4", appErr.Message)
	})

	t.Run("duplicate-key race maps to already invited", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		invitationRepo.createFn = func(context.Context, *models.Invitation) error {
			return gorm.ErrDuplicatedKey
		}
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		_, err := svc.Create(ctx, "alice", 4, "carol")
		require.Error(t, err)
		assert.Equal(t, "User carol already invited to 4", err.(*models.AppError).Message)
	})
}

func TestInvitationService_Decline(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing invitation", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		invitationRepo.getFn = func(_ context.Context, clubID uint, username string) (*models.Invitation, error) {
			return &models.Invitation{ClubID: clubID, Username: username}, nil
		}
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		message, err := svc.Decline(ctx, "carol", 4)
		require.NoError(t, err)
		assert.Equal(t, "Deleted invitation to club with ID 4 for carol", message)
	})

	t.Run("NotFound when there is nothing to decline", func(t *testing.T) {
		userRepo, clubRepo, membershipRepo, invitationRepo := invitationFixture()
		svc := NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo)

		_, err := svc.Decline(ctx, "carol", 4)
		require.Error(t, err)
		assert.Equal(t, models.CodeNotFound, err.(*models.AppError).Code)
	})
}
