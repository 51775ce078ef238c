package service

import (
	"context"
	"errors"
	"fmt"

	"waxclub/internal/models"
	"waxclub/internal/repository"

	"gorm.io/gorm"
)

// VoteService records up/down votes on posts. One row per (post, user);
// repeated votes flip the liked flag in place. No tallying happens here.
type VoteService struct {
	voteRepo repository.VoteRepository
}

// NewVoteService returns a new VoteService.
func NewVoteService(voteRepo repository.VoteRepository) *VoteService {
	return &VoteService{voteRepo: voteRepo}
}

// HandleVote updates the user's existing vote on the post, or inserts a new
// one. The returned message distinguishes the changed-vote path from the
// first-vote path.
func (s *VoteService) HandleVote(ctx context.Context, postID uint, username string, liked bool) (string, error) {
	existing, err := s.voteRepo.Get(ctx, postID, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		if err := s.voteRepo.UpdateLiked(ctx, postID, username, liked); err != nil {
			return "", err
		}
		return changedVoteMessage(postID, username, liked), nil
	}

	vote := &models.Vote{PostID: postID, Username: username, Liked: liked}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		// A concurrent first vote landed; treat ours as the change it is.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if updateErr := s.voteRepo.UpdateLiked(ctx, postID, username, liked); updateErr != nil {
				return "", updateErr
			}
			return changedVoteMessage(postID, username, liked), nil
		}
		return "", err
	}

	return fmt.Sprintf("User %s successfully %s post %d", username, voteWord(liked), postID), nil
}

func changedVoteMessage(postID uint, username string, liked bool) string {
	return fmt.Sprintf("Successfully changed vote by %s on post %d. User has now %s this post.",
		username, postID, voteWord(liked))
}

func voteWord(liked bool) string {
	if liked {
		return "upvoted"
	}
	return "downvoted"
}
