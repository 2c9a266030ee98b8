package paintings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/artefakt/archive-api/internal/models"
)

var (
	// ErrPaintingNotFound is returned when a painting doesn't exist
	ErrPaintingNotFound = errors.New("painting not found")
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new painting repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetPaintingByMediaItemID retrieves the painting record for a media item
func (r *RepositoryImpl) GetPaintingByMediaItemID(ctx context.Context, mediaItemID uint) (*models.Painting, error) {
	var painting models.Painting
	err := r.db.WithContext(ctx).Where("media_item_id = ?", mediaItemID).First(&painting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaintingNotFound
		}
		return nil, fmt.Errorf("failed to get painting: %w", err)
	}
	return &painting, nil
}

// ListPaintings retrieves all painting records
func (r *RepositoryImpl) ListPaintings(ctx context.Context) ([]models.Painting, error) {
	var paintings []models.Painting
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&paintings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list paintings: %w", err)
	}
	return paintings, nil
}

// UpsertByMediaItemID creates or updates the painting for a media item.
// The whole operation runs in a transaction and relies on the unique
// index on media_item_id, so two concurrent saves for the same item
// converge on a single record.
func (r *RepositoryImpl) UpsertByMediaItemID(ctx context.Context, mediaItemID uint, fields Fields) (*models.Painting, error) {
	var painting models.Painting
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assign := map[string]interface{}{
			"description": fields.Description,
			"artist":      fields.Artist,
			"year":        fields.Year,
		}
		return tx.Where(models.Painting{MediaItemID: mediaItemID}).
			Assign(assign).
			FirstOrCreate(&painting).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert painting: %w", err)
	}
	return &painting, nil
}

// DeletePainting removes a painting record by ID
func (r *RepositoryImpl) DeletePainting(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Painting{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete painting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPaintingNotFound
	}
	return nil
}
