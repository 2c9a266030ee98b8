package paintings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/artefakt/archive-api/internal/models"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPaintingByMediaItemID(ctx context.Context, mediaItemID uint) (*models.Painting, error) {
	args := m.Called(ctx, mediaItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Painting), args.Error(1)
}

func (m *MockRepository) ListPaintings(ctx context.Context) ([]models.Painting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Painting), args.Error(1)
}

func (m *MockRepository) UpsertByMediaItemID(ctx context.Context, mediaItemID uint, fields Fields) (*models.Painting, error) {
	args := m.Called(ctx, mediaItemID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Painting), args.Error(1)
}

func (m *MockRepository) DeletePainting(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSavePainting_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mediaItemID uint
		fields      Fields
		wantErr     string
	}{
		{
			name:        "missing media item ID",
			mediaItemID: 0,
			fields:      Fields{Description: "A portrait"},
			wantErr:     "Media item ID is required",
		},
		{
			name:        "empty description",
			mediaItemID: 3,
			fields:      Fields{Description: "   "},
			wantErr:     "Description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo)

			_, err := service.SavePainting(context.Background(), tt.mediaItemID, tt.fields)

			assert.EqualError(t, err, tt.wantErr)
			mockRepo.AssertNotCalled(t, "UpsertByMediaItemID")
		})
	}
}

func TestSavePainting_SecondSaveUpdatesSameRecord(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	first := Fields{Description: "Oil on canvas", Artist: "Unknown", Year: "1880"}
	second := Fields{Description: "Oil on canvas, restored", Artist: "J. Ensor", Year: "1880"}

	mockRepo.On("UpsertByMediaItemID", ctx, uint(7), first).
		Return(&models.Painting{MediaItemID: 7, Description: first.Description}, nil).Once()
	mockRepo.On("UpsertByMediaItemID", ctx, uint(7), second).
		Return(&models.Painting{MediaItemID: 7, Description: second.Description, Artist: second.Artist}, nil).Once()

	created, err := service.SavePainting(ctx, 7, first)
	assert.NoError(t, err)
	assert.Equal(t, "Oil on canvas", created.Description)

	updated, err := service.SavePainting(ctx, 7, second)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), updated.MediaItemID)
	assert.Equal(t, "J. Ensor", updated.Artist)

	mockRepo.AssertExpectations(t)
}
