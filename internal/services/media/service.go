package media

import (
	"context"
	"fmt"
	"log"

	"github.com/artefakt/archive-api/internal/models"
)

// updatableFields are the only media columns a partial update may
// touch. Each workflow writes its own subset; everything else is
// rejected up front.
var updatableFields = map[string]bool{
	"filename":          true,
	"album_id":          true,
	"class":             true,
	"ai_caption":        true,
	"ocr_text":          true,
	"translated_text":   true,
	"summarized_text":   true,
	"face_processed":    true,
	"recognized_people": true,
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new media service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// CreateMediaItem creates a new media item with validation
func (s *ServiceImpl) CreateMediaItem(ctx context.Context, item *models.MediaItem) error {
	if item.Filename == "" {
		return fmt.Errorf("Filename is required")
	}
	if item.AlbumID == 0 {
		return fmt.Errorf("Album ID is required")
	}
	if item.ObjectKey == "" {
		return fmt.Errorf("Object key is required")
	}
	return s.repository.CreateMediaItem(ctx, item)
}

// GetMediaItemByID retrieves a media item by its ID
func (s *ServiceImpl) GetMediaItemByID(ctx context.Context, id uint) (*models.MediaItem, error) {
	return s.repository.GetMediaItemByID(ctx, id)
}

// GetMediaItemsByIDs retrieves items and re-sorts them into the order
// of the given id list, so a workflow sees its selection order
func (s *ServiceImpl) GetMediaItemsByIDs(ctx context.Context, ids []uint) ([]models.MediaItem, error) {
	items, err := s.repository.GetMediaItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.MediaItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ordered := make([]models.MediaItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered, nil
}

// ListMediaItems retrieves media items matching the given options
func (s *ServiceImpl) ListMediaItems(ctx context.Context, opts ListOptions) ([]models.MediaItem, error) {
	return s.repository.ListMediaItems(ctx, opts)
}

// UpdateFields applies a partial update after checking every field is
// one a workflow is allowed to write
func (s *ServiceImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.MediaItem, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("No fields to update")
	}
	for name := range fields {
		if !updatableFields[name] {
			return nil, fmt.Errorf("Field %q is not updatable", name)
		}
	}

	if err := s.repository.UpdateMediaItemFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.repository.GetMediaItemByID(ctx, id)
}

// DeleteMediaItem deletes a media item by its ID
func (s *ServiceImpl) DeleteMediaItem(ctx context.Context, id uint) error {
	return s.repository.DeleteMediaItem(ctx, id)
}

// BulkDelete deletes each id independently, one delete call per item.
// Successes stay applied when later items fail.
func (s *ServiceImpl) BulkDelete(ctx context.Context, ids []uint) *DeleteReport {
	report := &DeleteReport{
		Deleted: make([]uint, 0, len(ids)),
		Failed:  make([]FailedItem, 0),
	}

	for _, id := range ids {
		if err := s.repository.DeleteMediaItem(ctx, id); err != nil {
			log.Printf("[ERROR] Bulk delete: media item %d: %v", id, err)
			report.Failed = append(report.Failed, FailedItem{ID: id, Error: err.Error()})
			continue
		}
		report.Deleted = append(report.Deleted, id)
	}
	return report
}
