package repository

import (
	"context"
	"errors"

	"waxclub/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines interface for post operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, clubID uint) ([]models.Post, error)
	ListForClubs(ctx context.Context, clubIDs []uint) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	DeleteByClub(ctx context.Context, clubID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts newest-first, scoped to a club when clubID is non-zero.
func (r *postRepository) List(ctx context.Context, clubID uint) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.WithContext(ctx).Order("id DESC")
	if clubID != 0 {
		q = q.Where("club_id = ?", clubID)
	}
	err := q.Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListForClubs(ctx context.Context, clubIDs []uint) ([]models.Post, error) {
	if len(clubIDs) == 0 {
		return nil, nil
	}
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("club_id IN ?", clubIDs).
		Order("id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

func (r *postRepository) DeleteByClub(ctx context.Context, clubID uint) error {
	return r.db.WithContext(ctx).Where("club_id = ?", clubID).Delete(&models.Post{}).Error
}
