package detections

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/artefakt/archive-api/internal/models"
)

var (
	// ErrDetectionNotFound is returned when a detection result doesn't exist
	ErrDetectionNotFound = errors.New("element detection not found")
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new element detection repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetDetectionByMediaItemID(ctx context.Context, mediaItemID uint) (*models.ElementDetection, error) {
	var detection models.ElementDetection
	err := r.db.WithContext(ctx).Where("media_item_id = ?", mediaItemID).First(&detection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetectionNotFound
		}
		return nil, fmt.Errorf("failed to get element detection: %w", err)
	}
	return &detection, nil
}

// ListDetections retrieves detection records, optionally filtered by status
func (r *RepositoryImpl) ListDetections(ctx context.Context, status models.DetectionStatus) ([]models.ElementDetection, error) {
	var detections []models.ElementDetection
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&detections).Error; err != nil {
		return nil, fmt.Errorf("failed to list element detections: %w", err)
	}
	return detections, nil
}

// UpsertByMediaItemID creates or replaces the detection result for a
// media item inside a transaction
func (r *RepositoryImpl) UpsertByMediaItemID(ctx context.Context, mediaItemID uint, boxes models.BoundingBoxList, annotatedKey string, status models.DetectionStatus) (*models.ElementDetection, error) {
	var detection models.ElementDetection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assign := map[string]interface{}{
			"boxes":         boxes,
			"annotated_key": annotatedKey,
			"status":        status,
		}
		return tx.Where(models.ElementDetection{MediaItemID: mediaItemID}).
			Assign(assign).
			FirstOrCreate(&detection).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert element detection: %w", err)
	}
	return &detection, nil
}

// UpdateStatus transitions the detection record for a media item
func (r *RepositoryImpl) UpdateStatus(ctx context.Context, mediaItemID uint, status models.DetectionStatus) error {
	result := r.db.WithContext(ctx).Model(&models.ElementDetection{}).
		Where("media_item_id = ?", mediaItemID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update detection status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDetectionNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteDetection(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ElementDetection{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete element detection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDetectionNotFound
	}
	return nil
}
