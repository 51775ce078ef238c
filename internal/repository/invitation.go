package repository

import (
	"context"
	"errors"

	"waxclub/internal/models"

	"gorm.io/gorm"
)

// InvitationRepository defines interface for club invitation operations
type InvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	Get(ctx context.Context, clubID uint, username string) (*models.Invitation, error)
	ListByUsername(ctx context.Context, username string) ([]models.Invitation, error)
	Delete(ctx context.Context, clubID uint, username string) error
	DeleteByClub(ctx context.Context, clubID uint) error
}

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

func (r *invitationRepository) Get(ctx context.Context, clubID uint, username string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).
		Where("club_id = ? AND username = ?", clubID, username).
		First(&invitation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func (r *invitationRepository) ListByUsername(ctx context.Context, username string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.WithContext(ctx).Preload("Club").Where("username = ?", username).Find(&invitations).Error
	return invitations, err
}

func (r *invitationRepository) Delete(ctx context.Context, clubID uint, username string) error {
	return r.db.WithContext(ctx).
		Where("club_id = ? AND username = ?", clubID, username).
		Delete(&models.Invitation{}).Error
}

func (r *invitationRepository) DeleteByClub(ctx context.Context, clubID uint) error {
	return r.db.WithContext(ctx).Where("club_id = ?", clubID).Delete(&models.Invitation{}).Error
}
