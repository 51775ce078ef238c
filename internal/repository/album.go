package repository

import (
	"context"
	"errors"

	"waxclub/internal/models"

	"gorm.io/gorm"
)

// AlbumRepository defines interface for cached album metadata operations
type AlbumRepository interface {
	Create(ctx context.Context, album *models.Album) error
	Get(ctx context.Context, discogsID int) (*models.Album, error)
	GetSome(ctx context.Context, discogsIDs []int) ([]models.Album, error)
	CreateGenres(ctx context.Context, discogsID int, genres []string) error
	GenresForAlbum(ctx context.Context, discogsID int) ([]string, error)
}

type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates a new AlbumRepository
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

func (r *albumRepository) Create(ctx context.Context, album *models.Album) error {
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *albumRepository) Get(ctx context.Context, discogsID int) (*models.Album, error) {
	var album models.Album
	err := r.db.WithContext(ctx).Where("discogs_id = ?", discogsID).First(&album).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *albumRepository) GetSome(ctx context.Context, discogsIDs []int) ([]models.Album, error) {
	if len(discogsIDs) == 0 {
		return nil, nil
	}
	var albums []models.Album
	err := r.db.WithContext(ctx).Where("discogs_id IN ?", discogsIDs).Find(&albums).Error
	return albums, err
}

func (r *albumRepository) CreateGenres(ctx context.Context, discogsID int, genres []string) error {
	if len(genres) == 0 {
		return nil
	}
	rows := make([]models.AlbumGenre, 0, len(genres))
	for _, genre := range genres {
		rows = append(rows, models.AlbumGenre{DiscogsID: discogsID, Genre: genre})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *albumRepository) GenresForAlbum(ctx context.Context, discogsID int) ([]string, error) {
	var rows []models.AlbumGenre
	if err := r.db.WithContext(ctx).Where("discogs_id = ?", discogsID).Find(&rows).Error; err != nil {
		return nil, err
	}
	genres := make([]string, 0, len(rows))
	for _, row := range rows {
		genres = append(genres, row.Genre)
	}
	return genres, nil
}
