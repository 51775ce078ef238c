package repository

import (
	"context"
	"errors"

	"waxclub/internal/models"

	"gorm.io/gorm"
)

// ClubFilters narrows List results. Nil/empty fields match everything.
type ClubFilters struct {
	IsPublic *bool
	Name     string
}

// ClubRepository defines interface for club operations
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id uint) (*models.Club, error)
	List(ctx context.Context, filters ClubFilters) ([]models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	Delete(ctx context.Context, id uint) error
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepository) GetByID(ctx context.Context, id uint) (*models.Club, error) {
	var club models.Club
	err := r.db.WithContext(ctx).First(&club, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) List(ctx context.Context, filters ClubFilters) ([]models.Club, error) {
	var clubs []models.Club
	q := r.db.WithContext(ctx).Order("name ASC")
	if filters.IsPublic != nil {
		q = q.Where("is_public = ?", *filters.IsPublic)
	}
	if filters.Name != "" {
		q = q.Where("name LIKE ?", "%"+filters.Name+"%")
	}
	err := q.Find(&clubs).Error
	return clubs, err
}

func (r *clubRepository) Update(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Save(club).Error
}

func (r *clubRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Club{}, id).Error
}
