package paintings

import (
	"context"
	"errors"
	"strings"

	"github.com/artefakt/archive-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo Repository
}

// NewService creates a new painting service
func NewService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

// GetPaintingByMediaItemID retrieves the painting record for a media item
func (s *ServiceImpl) GetPaintingByMediaItemID(ctx context.Context, mediaItemID uint) (*models.Painting, error) {
	if mediaItemID == 0 {
		return nil, errors.New("Media item ID is required")
	}
	return s.repo.GetPaintingByMediaItemID(ctx, mediaItemID)
}

// ListPaintings retrieves all painting records
func (s *ServiceImpl) ListPaintings(ctx context.Context) ([]models.Painting, error) {
	return s.repo.ListPaintings(ctx)
}

// SavePainting creates or updates the painting for a media item.
// Saving the same item twice yields one record with the latest fields.
func (s *ServiceImpl) SavePainting(ctx context.Context, mediaItemID uint, fields Fields) (*models.Painting, error) {
	if mediaItemID == 0 {
		return nil, errors.New("Media item ID is required")
	}
	if strings.TrimSpace(fields.Description) == "" {
		return nil, errors.New("Description is required")
	}
	return s.repo.UpsertByMediaItemID(ctx, mediaItemID, fields)
}

// DeletePainting removes a painting record by ID
func (s *ServiceImpl) DeletePainting(ctx context.Context, id uint) error {
	return s.repo.DeletePainting(ctx, id)
}
