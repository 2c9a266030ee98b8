package media

import (
	"context"

	"github.com/artefakt/archive-api/internal/models"
)

// ListOptions narrows a media listing
type ListOptions struct {
	AlbumID uint
	// Case-insensitive substring match on filename
	Search string
	// Only items not yet through facial-recognition review
	UnprocessedOnly bool
}

// DeleteReport is the outcome of a bulk delete. The operation is not
// transactional; whichever per-item deletes succeeded remain applied.
type DeleteReport struct {
	Deleted []uint        `json:"deleted"`
	Failed  []FailedItem  `json:"failed"`
}

// FailedItem records one item of a bulk operation that did not apply
type FailedItem struct {
	ID    uint   `json:"id"`
	Error string `json:"error"`
}

// Repository defines the interface for media data access
type Repository interface {
	CreateMediaItem(ctx context.Context, item *models.MediaItem) error
	GetMediaItemByID(ctx context.Context, id uint) (*models.MediaItem, error)
	GetMediaItemsByIDs(ctx context.Context, ids []uint) ([]models.MediaItem, error)
	ListMediaItems(ctx context.Context, opts ListOptions) ([]models.MediaItem, error)
	UpdateMediaItemFields(ctx context.Context, id uint, fields map[string]interface{}) error
	DeleteMediaItem(ctx context.Context, id uint) error
}

// Service defines the interface for media business logic
type Service interface {
	CreateMediaItem(ctx context.Context, item *models.MediaItem) error
	GetMediaItemByID(ctx context.Context, id uint) (*models.MediaItem, error)
	// GetMediaItemsByIDs returns items in the order the ids were given
	GetMediaItemsByIDs(ctx context.Context, ids []uint) ([]models.MediaItem, error)
	ListMediaItems(ctx context.Context, opts ListOptions) ([]models.MediaItem, error)
	// UpdateFields applies a partial update. Only annotation and
	// metadata columns may be touched; unknown fields are rejected so a
	// workflow can never clobber columns it does not own.
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.MediaItem, error)
	DeleteMediaItem(ctx context.Context, id uint) error
	// BulkDelete deletes each id independently and reports per-item
	// results instead of a single pass/fail outcome.
	BulkDelete(ctx context.Context, ids []uint) *DeleteReport
}
