package albums

import (
	"context"
	"errors"
	"fmt"

	"github.com/artefakt/archive-api/internal/models"
	"gorm.io/gorm"
)

// ErrAlbumNotFound is returned when an album does not exist
var ErrAlbumNotFound = errors.New("album not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new album repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) CreateAlbum(ctx context.Context, album *models.Album) error {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return fmt.Errorf("creating album: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetAlbumByID(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).First(&album, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlbumNotFound
		}
		return nil, fmt.Errorf("getting album: %w", err)
	}
	return &album, nil
}

func (r *RepositoryImpl) ListAlbums(ctx context.Context, albumType models.AlbumType) ([]models.Album, error) {
	query := r.db.WithContext(ctx).Model(&models.Album{})
	if albumType != "" {
		query = query.Where("type = ?", albumType)
	}

	var albums []models.Album
	if err := query.Order("name ASC").Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("listing albums: %w", err)
	}
	return albums, nil
}

func (r *RepositoryImpl) UpdateAlbum(ctx context.Context, album *models.Album) error {
	result := r.db.WithContext(ctx).Save(album)
	if result.Error != nil {
		return fmt.Errorf("updating album: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlbumNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteAlbum(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Album{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting album: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlbumNotFound
	}
	return nil
}
