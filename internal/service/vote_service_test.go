package service

import (
	"context"
	"testing"

	"waxclub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVoteService_HandleVote(t *testing.T) {
	ctx := context.Background()

	t.Run("first vote inserts", func(t *testing.T) {
		voteRepo := noopVoteRepo()
		var created *models.Vote
		voteRepo.createFn = func(_ context.Context, v *models.Vote) error {
			created = v
			return nil
		}
		svc := NewVoteService(voteRepo)

		message, err := svc.HandleVote(ctx, 9, "bob", true)
		require.NoError(t, err)
		assert.Equal(t, "User bob successfully upvoted post 9", message)
		require.NotNil(t, created)
		assert.True(t, created.Liked)
	})

	t.Run("downvote wording", func(t *testing.T) {
		svc := NewVoteService(noopVoteRepo())

		message, err := svc.HandleVote(ctx, 9, "bob", false)
		require.NoError(t, err)
		assert.Equal(t, "User bob successfully downvoted post 9", message)
	})

	t.Run("existing vote flips in place", func(t *testing.T) {
		voteRepo := noopVoteRepo()
		voteRepo.getFn = func(_ context.Context, postID uint, username string) (*models.Vote, error) {
			return &models.Vote{PostID: postID, Username: username, Liked: true}, nil
		}
		var updatedLiked *bool
		voteRepo.updateLikedFn = func(_ context.Context, _ uint, _ string, liked bool) error {
			updatedLiked = &liked
			return nil
		}
		voteRepo.createFn = func(context.Context, *models.Vote) error {
			t.Fatal("create should not run when a vote exists")
			return nil
		}
		svc := NewVoteService(voteRepo)

		message, err := svc.HandleVote(ctx, 9, "bob", false)
		require.NoError(t, err)
		assert.Equal(t, "Successfully changed vote by bob on post 9. User has now downvoted this post.", message)
		require.NotNil(t, updatedLiked)
		assert.False(t, *updatedLiked)
	})

	t.Run("re-vote in the same direction still reports a change", func(t *testing.T) {
		voteRepo := noopVoteRepo()
		voteRepo.getFn = func(_ context.Context, postID uint, username string) (*models.Vote, error) {
			return &models.Vote{PostID: postID, Username: username, Liked: true}, nil
		}
		svc := NewVoteService(voteRepo)

		message, err := svc.HandleVote(ctx, 9, "bob", true)
		require.NoError(t, err)
		assert.Equal(t, "Successfully changed vote by bob on post 9. User has now upvoted this post.", message)
	})

	t.Run("duplicate-key race falls back to the update path", func(t *testing.T) {
		voteRepo := noopVoteRepo()
		voteRepo.createFn = func(context.Context, *models.Vote) error {
			return gorm.ErrDuplicatedKey
		}
		updated := false
		voteRepo.updateLikedFn = func(context.Context, uint, string, bool) error {
			updated = true
			return nil
		}
		svc := NewVoteService(voteRepo)

		message, err := svc.HandleVote(ctx, 9, "bob", true)
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "Successfully changed vote by bob on post 9. User has now upvoted this post.", message)
	})
}
