package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artefakt/archive-api/internal/models"
	"gorm.io/gorm"
)

// ErrMediaItemNotFound is returned when a media item does not exist
var ErrMediaItemNotFound = errors.New("media item not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new media repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateMediaItem creates a new media item in the database
func (r *RepositoryImpl) CreateMediaItem(ctx context.Context, item *models.MediaItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating media item: %w", err)
	}
	return nil
}

// GetMediaItemByID retrieves a media item by its ID
func (r *RepositoryImpl) GetMediaItemByID(ctx context.Context, id uint) (*models.MediaItem, error) {
	var item models.MediaItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMediaItemNotFound
		}
		return nil, fmt.Errorf("getting media item: %w", err)
	}
	return &item, nil
}

// GetMediaItemsByIDs retrieves media items matching the given IDs in
// database order; callers needing selection order re-sort
func (r *RepositoryImpl) GetMediaItemsByIDs(ctx context.Context, ids []uint) ([]models.MediaItem, error) {
	var items []models.MediaItem
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("getting media items: %w", err)
	}
	return items, nil
}

// ListMediaItems retrieves media items matching the given options
func (r *RepositoryImpl) ListMediaItems(ctx context.Context, opts ListOptions) ([]models.MediaItem, error) {
	query := r.db.WithContext(ctx).Model(&models.MediaItem{})

	if opts.AlbumID != 0 {
		query = query.Where("album_id = ?", opts.AlbumID)
	}
	if opts.Search != "" {
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where("LOWER(filename) LIKE ?", pattern)
	}
	if opts.UnprocessedOnly {
		query = query.Where("face_processed = ?", false)
	}

	var items []models.MediaItem
	if err := query.Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing media items: %w", err)
	}
	return items, nil
}

// UpdateMediaItemFields applies a partial column update to one item
func (r *RepositoryImpl) UpdateMediaItemFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.MediaItem{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("updating media item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMediaItemNotFound
	}
	return nil
}

// DeleteMediaItem deletes a media item by its ID
func (r *RepositoryImpl) DeleteMediaItem(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MediaItem{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting media item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMediaItemNotFound
	}
	return nil
}
