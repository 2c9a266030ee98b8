package minutes

import (
	"context"

	"github.com/artefakt/archive-api/internal/models"
)

// Fields is the editable subset of a meeting minute record
type Fields struct {
	Title          string `json:"title"`
	OCRText        string `json:"ocr_text"`
	TranslatedText string `json:"translated_text"`
	SummarizedText string `json:"summarized_text"`
}

// Repository defines the interface for meeting minute data access
type Repository interface {
	GetMinuteByMediaItemID(ctx context.Context, mediaItemID uint) (*models.MeetingMinute, error)
	ListMinutes(ctx context.Context) ([]models.MeetingMinute, error)
	UpsertByMediaItemID(ctx context.Context, mediaItemID uint, fields Fields) (*models.MeetingMinute, error)
	DeleteMinute(ctx context.Context, id uint) error
}

// Service defines the interface for meeting minute business logic
type Service interface {
	GetMinuteByMediaItemID(ctx context.Context, mediaItemID uint) (*models.MeetingMinute, error)
	ListMinutes(ctx context.Context) ([]models.MeetingMinute, error)
	// SaveMinute is the workflow save: create-or-update keyed by the
	// media reference
	SaveMinute(ctx context.Context, mediaItemID uint, fields Fields) (*models.MeetingMinute, error)
	DeleteMinute(ctx context.Context, id uint) error
}
