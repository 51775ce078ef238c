package repository

import (
	"context"
	"errors"

	"waxclub/internal/models"

	"gorm.io/gorm"
)

// VoteRepository defines interface for post vote operations
type VoteRepository interface {
	Create(ctx context.Context, vote *models.Vote) error
	Get(ctx context.Context, postID uint, username string) (*models.Vote, error)
	ListByPost(ctx context.Context, postID uint) ([]models.Vote, error)
	UpdateLiked(ctx context.Context, postID uint, username string, liked bool) error
	Delete(ctx context.Context, postID uint, username string) error
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepository) Get(ctx context.Context, postID uint, username string) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND username = ?", postID, username).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) ListByPost(ctx context.Context, postID uint) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).Find(&votes).Error
	return votes, err
}

func (r *voteRepository) UpdateLiked(ctx context.Context, postID uint, username string, liked bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("post_id = ? AND username = ?", postID, username).
		Update("liked", liked).Error
}

func (r *voteRepository) Delete(ctx context.Context, postID uint, username string) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND username = ?", postID, username).
		Delete(&models.Vote{}).Error
}
