package detections

import (
	"context"
	"errors"

	"github.com/artefakt/archive-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo Repository
}

// NewService creates a new element detection service
func NewService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetDetectionByMediaItemID(ctx context.Context, mediaItemID uint) (*models.ElementDetection, error) {
	if mediaItemID == 0 {
		return nil, errors.New("Media item ID is required")
	}
	return s.repo.GetDetectionByMediaItemID(ctx, mediaItemID)
}

func (s *ServiceImpl) ListDetections(ctx context.Context, status models.DetectionStatus) ([]models.ElementDetection, error) {
	return s.repo.ListDetections(ctx, status)
}

// RecordDetection stores detector output for a media item. An earlier
// result for the same item is overwritten.
func (s *ServiceImpl) RecordDetection(ctx context.Context, mediaItemID uint, boxes models.BoundingBoxList, annotatedKey string) (*models.ElementDetection, error) {
	if mediaItemID == 0 {
		return nil, errors.New("Media item ID is required")
	}
	if len(boxes) == 0 {
		return nil, errors.New("At least one bounding box is required")
	}
	return s.repo.UpsertByMediaItemID(ctx, mediaItemID, boxes, annotatedKey, models.DetectionStatusDetected)
}

// ConfirmDetection marks the item's detection result as saved
func (s *ServiceImpl) ConfirmDetection(ctx context.Context, mediaItemID uint) (*models.ElementDetection, error) {
	if mediaItemID == 0 {
		return nil, errors.New("Media item ID is required")
	}
	if err := s.repo.UpdateStatus(ctx, mediaItemID, models.DetectionStatusSaved); err != nil {
		return nil, err
	}
	return s.repo.GetDetectionByMediaItemID(ctx, mediaItemID)
}

func (s *ServiceImpl) DeleteDetection(ctx context.Context, id uint) error {
	return s.repo.DeleteDetection(ctx, id)
}
