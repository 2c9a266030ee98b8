package minutes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artefakt/archive-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetMinuteByMediaItemID(ctx context.Context, mediaItemID uint) (*models.MeetingMinute, error) {
	args := m.Called(ctx, mediaItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingMinute), args.Error(1)
}

func (m *MockRepository) ListMinutes(ctx context.Context) ([]models.MeetingMinute, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MeetingMinute), args.Error(1)
}

func (m *MockRepository) UpsertByMediaItemID(ctx context.Context, mediaItemID uint, fields Fields) (*models.MeetingMinute, error) {
	args := m.Called(ctx, mediaItemID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MeetingMinute), args.Error(1)
}

func (m *MockRepository) DeleteMinute(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSaveMinute_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mediaItemID uint
		fields      Fields
		wantErr     string
	}{
		{
			name:        "missing media item ID",
			mediaItemID: 0,
			fields:      Fields{OCRText: "tekst"},
			wantErr:     "Media item ID is required",
		},
		{
			name:        "all text fields empty",
			mediaItemID: 3,
			fields:      Fields{Title: "Notulen 1903"},
			wantErr:     "At least one text field is required",
		},
		{
			name:        "whitespace only",
			mediaItemID: 3,
			fields:      Fields{OCRText: "   "},
			wantErr:     "At least one text field is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			service := NewService(repo)

			_, err := service.SaveMinute(context.Background(), tt.mediaItemID, tt.fields)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			repo.AssertNotCalled(t, "UpsertByMediaItemID", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSaveMinute_UpsertsByMediaItem(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	fields := Fields{
		Title:          "Notulen 12 maart 1903",
		OCRText:        "De vergadering werd geopend...",
		TranslatedText: "The meeting was opened...",
	}
	repo.On("UpsertByMediaItemID", mock.Anything, uint(5), fields).Return(&models.MeetingMinute{
		MediaItemID: 5,
		Title:       fields.Title,
		OCRText:     fields.OCRText,
	}, nil)

	record, err := service.SaveMinute(context.Background(), 5, fields)
	require.NoError(t, err)
	assert.Equal(t, uint(5), record.MediaItemID)
	repo.AssertExpectations(t)
}

func TestSaveMinute_SecondSaveUpdatesSameRecord(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	first := Fields{OCRText: "eerste versie"}
	second := Fields{OCRText: "eerste versie", SummarizedText: "samenvatting"}

	repo.On("UpsertByMediaItemID", mock.Anything, uint(8), first).
		Return(&models.MeetingMinute{Model: gorm.Model{ID: 21}, MediaItemID: 8, OCRText: first.OCRText}, nil).Once()
	repo.On("UpsertByMediaItemID", mock.Anything, uint(8), second).
		Return(&models.MeetingMinute{Model: gorm.Model{ID: 21}, MediaItemID: 8, OCRText: second.OCRText, SummarizedText: second.SummarizedText}, nil).Once()

	a, err := service.SaveMinute(context.Background(), 8, first)
	require.NoError(t, err)
	b, err := service.SaveMinute(context.Background(), 8, second)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "samenvatting", b.SummarizedText)
}
