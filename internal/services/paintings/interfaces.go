package paintings

import (
	"context"

	"github.com/artefakt/archive-api/internal/models"
)

// Fields is the editable subset of a painting record
type Fields struct {
	Description string `json:"description"`
	Artist      string `json:"artist"`
	Year        string `json:"year"`
}

// Repository defines the interface for painting data access
type Repository interface {
	GetPaintingByMediaItemID(ctx context.Context, mediaItemID uint) (*models.Painting, error)
	ListPaintings(ctx context.Context) ([]models.Painting, error)
	// UpsertByMediaItemID updates the painting for the media item, or
	// creates it when none exists, atomically
	UpsertByMediaItemID(ctx context.Context, mediaItemID uint, fields Fields) (*models.Painting, error)
	DeletePainting(ctx context.Context, id uint) error
}

// Service defines the interface for painting business logic
type Service interface {
	GetPaintingByMediaItemID(ctx context.Context, mediaItemID uint) (*models.Painting, error)
	ListPaintings(ctx context.Context) ([]models.Painting, error)
	// SavePainting is the workflow save: create-or-update keyed by the
	// media reference, idempotent at the record level
	SavePainting(ctx context.Context, mediaItemID uint, fields Fields) (*models.Painting, error)
	DeletePainting(ctx context.Context, id uint) error
}
