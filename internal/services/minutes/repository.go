package minutes

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/artefakt/archive-api/internal/models"
)

var (
	// ErrMinuteNotFound is returned when a meeting minute doesn't exist
	ErrMinuteNotFound = errors.New("meeting minute not found")
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new meeting minute repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetMinuteByMediaItemID retrieves the minute record for a media item
func (r *RepositoryImpl) GetMinuteByMediaItemID(ctx context.Context, mediaItemID uint) (*models.MeetingMinute, error) {
	var minute models.MeetingMinute
	err := r.db.WithContext(ctx).Where("media_item_id = ?", mediaItemID).First(&minute).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMinuteNotFound
		}
		return nil, fmt.Errorf("failed to get meeting minute: %w", err)
	}
	return &minute, nil
}

// ListMinutes retrieves all meeting minute records
func (r *RepositoryImpl) ListMinutes(ctx context.Context) ([]models.MeetingMinute, error) {
	var minutes []models.MeetingMinute
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&minutes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting minutes: %w", err)
	}
	return minutes, nil
}

// UpsertByMediaItemID creates or updates the minute for a media item
// inside a transaction, backed by the unique index on media_item_id
func (r *RepositoryImpl) UpsertByMediaItemID(ctx context.Context, mediaItemID uint, fields Fields) (*models.MeetingMinute, error) {
	var minute models.MeetingMinute
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assign := map[string]interface{}{
			"title":           fields.Title,
			"ocr_text":        fields.OCRText,
			"translated_text": fields.TranslatedText,
			"summarized_text": fields.SummarizedText,
		}
		return tx.Where(models.MeetingMinute{MediaItemID: mediaItemID}).
			Assign(assign).
			FirstOrCreate(&minute).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert meeting minute: %w", err)
	}
	return &minute, nil
}

// DeleteMinute removes a meeting minute record by ID
func (r *RepositoryImpl) DeleteMinute(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MeetingMinute{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meeting minute: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMinuteNotFound
	}
	return nil
}
