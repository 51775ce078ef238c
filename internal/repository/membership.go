package repository

import (
	"context"
	"errors"

	"waxclub/internal/models"

	"gorm.io/gorm"
)

// MembershipRepository defines interface for club membership operations
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	Get(ctx context.Context, username string, clubID uint) (*models.Membership, error)
	ListByUsername(ctx context.Context, username string) ([]models.Membership, error)
	ListByClub(ctx context.Context, clubID uint) ([]models.Membership, error)
	Delete(ctx context.Context, username string, clubID uint) error
	DeleteByClub(ctx context.Context, clubID uint) error
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepository) Get(ctx context.Context, username string, clubID uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Where("username = ? AND club_id = ?", username, clubID).
		First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) ListByUsername(ctx context.Context, username string) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.WithContext(ctx).Where("username = ?", username).Find(&memberships).Error
	return memberships, err
}

func (r *membershipRepository) ListByClub(ctx context.Context, clubID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.WithContext(ctx).Preload("User").Where("club_id = ?", clubID).Find(&memberships).Error
	return memberships, err
}

func (r *membershipRepository) Delete(ctx context.Context, username string, clubID uint) error {
	return r.db.WithContext(ctx).
		Where("username = ? AND club_id = ?", username, clubID).
		Delete(&models.Membership{}).Error
}

func (r *membershipRepository) DeleteByClub(ctx context.Context, clubID uint) error {
	return r.db.WithContext(ctx).Where("club_id = ?", clubID).Delete(&models.Membership{}).Error
}
