package detections

import (
	"context"

	"github.com/artefakt/archive-api/internal/models"
)

// Repository defines the interface for element detection data access
type Repository interface {
	GetDetectionByMediaItemID(ctx context.Context, mediaItemID uint) (*models.ElementDetection, error)
	ListDetections(ctx context.Context, status models.DetectionStatus) ([]models.ElementDetection, error)
	UpsertByMediaItemID(ctx context.Context, mediaItemID uint, boxes models.BoundingBoxList, annotatedKey string, status models.DetectionStatus) (*models.ElementDetection, error)
	UpdateStatus(ctx context.Context, mediaItemID uint, status models.DetectionStatus) error
	DeleteDetection(ctx context.Context, id uint) error
}

// Service defines the interface for element detection business logic
type Service interface {
	GetDetectionByMediaItemID(ctx context.Context, mediaItemID uint) (*models.ElementDetection, error)
	ListDetections(ctx context.Context, status models.DetectionStatus) ([]models.ElementDetection, error)
	// RecordDetection stores detector output for a media item with
	// status "detected", replacing any previous result
	RecordDetection(ctx context.Context, mediaItemID uint, boxes models.BoundingBoxList, annotatedKey string) (*models.ElementDetection, error)
	// ConfirmDetection marks a detected result as "saved"
	ConfirmDetection(ctx context.Context, mediaItemID uint) (*models.ElementDetection, error)
	DeleteDetection(ctx context.Context, id uint) error
}
