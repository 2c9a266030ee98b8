package minutes

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

// NewService creates a new meeting minute service
func NewService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetMinuteByMediaItemID(ctx context.Context, mediaItemID uint) (*models.MeetingMinute, error) {
	if mediaItemID == 0 {
		return nil, errors.New("Media item ID is required")
	}
	return s.repo.GetMinuteByMediaItemID(ctx, mediaItemID)
}

func (s *ServiceImpl) ListMinutes(ctx context.Context) ([]models.MeetingMinute, error) {
	return s.repo.ListMinutes(ctx)
}

// SaveMinute creates or updates the minute for a media item. At least
// one text field must carry content.
func (s *ServiceImpl) SaveMinute(ctx context.Context, mediaItemID uint, fields Fields) (*models.MeetingMinute, error) {
	if mediaItemID == 0 {
		return nil, errors.New("Media item ID is required")
	}
	if strings.TrimSpace(fields.OCRText) == "" &&
		strings.TrimSpace(fields.TranslatedText) == "" &&
		strings.TrimSpace(fields.SummarizedText) == "" {
		return nil, errors.New("At least one text field is required")
	}
	return s.repo.UpsertByMediaItemID(ctx, mediaItemID, fields)
}

func (s *ServiceImpl) DeleteMinute(ctx context.Context, id uint) error {
	return s.repo.DeleteMinute(ctx, id)
}
