package recognition

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/internal/services/media"
	"github.com/artefakt/archive-api/internal/services/people"
	"github.com/artefakt/archive-api/internal/services/vision"
)

// MockMediaService is a mock implementation of media.Service
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) CreateMediaItem(ctx context.Context, item *models.MediaItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMediaService) GetMediaItemByID(ctx context.Context, id uint) (*models.MediaItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaItem), args.Error(1)
}

func (m *MockMediaService) GetMediaItemsByIDs(ctx context.Context, ids []uint) ([]models.MediaItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaItem), args.Error(1)
}

func (m *MockMediaService) ListMediaItems(ctx context.Context, opts media.ListOptions) ([]models.MediaItem, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaItem), args.Error(1)
}

func (m *MockMediaService) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.MediaItem, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaItem), args.Error(1)
}

func (m *MockMediaService) DeleteMediaItem(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMediaService) BulkDelete(ctx context.Context, ids []uint) *media.DeleteReport {
	args := m.Called(ctx, ids)
	return args.Get(0).(*media.DeleteReport)
}

// MockPeopleService is a mock implementation of people.Service
type MockPeopleService struct {
	mock.Mock
}

func (m *MockPeopleService) CreatePerson(ctx context.Context, person *models.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPeopleService) GetPersonByID(ctx context.Context, id uint) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPeopleService) FindByName(ctx context.Context, name string) (*models.Person, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *MockPeopleService) ListPeople(ctx context.Context, search string) ([]models.Person, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *MockPeopleService) IncrementFaceCount(ctx context.Context, id uint, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockPeopleService) DeletePerson(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVision is a mock implementation of vision.Client
type MockVision struct {
	mock.Mock
}

func (m *MockVision) DetectFaces(ctx context.Context, imageData []byte, filename string) ([]vision.Face, error) {
	args := m.Called(ctx, imageData, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vision.Face), args.Error(1)
}

func (m *MockVision) IdentifyFaces(ctx context.Context, crops [][]byte) ([]vision.Identification, error) {
	args := m.Called(ctx, crops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vision.Identification), args.Error(1)
}

func (m *MockVision) DetectElements(ctx context.Context, imageData []byte, filename string) (*vision.ElementResult, error) {
	args := m.Called(ctx, imageData, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vision.ElementResult), args.Error(1)
}

type stubStorage struct{}

func (stubStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return nil
}
func (stubStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader([]byte("image-bytes"))), nil
}
func (stubStorage) GetURL(key string) string                             { return "http://files/" + key }
func (stubStorage) Delete(ctx context.Context, key string) error         { return nil }
func (stubStorage) Exists(ctx context.Context, key string) (bool, error) { return true, nil }

func unprocessedItem(id uint, filename string) models.MediaItem {
	item := models.MediaItem{Filename: filename, ObjectKey: "media/" + filename}
	item.ID = id
	return item
}

func twoFaces() []vision.Face {
	return []vision.Face{
		{X: 10, Y: 10, Width: 40, Height: 40, Confidence: 0.98, Crop: []byte("crop-a")},
		{X: 90, Y: 12, Width: 38, Height: 42, Confidence: 0.95, Crop: []byte("crop-b")},
	}
}

func TestApprove_OneResolvableNamePersistsExactlyOneID(t *testing.T) {
	mockMedia := new(MockMediaService)
	mockPeople := new(MockPeopleService)
	mockVision := new(MockVision)
	ctx := context.Background()

	service := NewService(mockMedia, mockPeople, mockVision, stubStorage{}, Config{})
	defer service.Close()

	mockMedia.On("ListMediaItems", ctx, media.ListOptions{AlbumID: 4, UnprocessedOnly: true}).
		Return([]models.MediaItem{unprocessedItem(31, "group.jpg")}, nil)
	mockVision.On("DetectFaces", ctx, []byte("image-bytes"), "group.jpg").
		Return(twoFaces(), nil)
	// identification receives the crops from detection, not the full image
	mockVision.On("IdentifyFaces", ctx, [][]byte{[]byte("crop-a"), []byte("crop-b")}).
		Return([]vision.Identification{
			{Name: "Maria Janssens", Confidence: 0.91},
			{Name: "Onbekend Persoon", Confidence: 0.40},
		}, nil)

	session, err := service.StartSession(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, StateFacesReady, session.State)
	require.Len(t, session.Faces, 2)
	assert.Equal(t, "Maria Janssens", session.Faces[0].AssignedName)

	knownPerson := &models.Person{Name: "Maria Janssens"}
	knownPerson.ID = 17
	mockPeople.On("FindByName", ctx, "Maria Janssens").Return(knownPerson, nil)
	mockPeople.On("FindByName", ctx, "Onbekend Persoon").Return(nil, people.ErrPersonNotFound)
	mockPeople.On("IncrementFaceCount", ctx, uint(17), 1).Return(nil)

	mockMedia.On("UpdateFields", ctx, uint(31), map[string]interface{}{
		"face_processed":    true,
		"recognized_people": models.UintList{17},
	}).Return(&models.MediaItem{}, nil).Once()

	result, err := service.Approve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{17}, result.RecognizedIDs)
	assert.Equal(t, []string{"Onbekend Persoon"}, result.Unmatched)
	assert.True(t, result.Complete)

	// default policy drops unmatched names without creating a Person
	mockPeople.AssertNotCalled(t, "CreatePerson", mock.Anything, mock.Anything)
	mockMedia.AssertExpectations(t)
}

func TestApprove_CreateMissingPeoplePolicy(t *testing.T) {
	mockMedia := new(MockMediaService)
	mockPeople := new(MockPeopleService)
	mockVision := new(MockVision)
	ctx := context.Background()

	service := NewService(mockMedia, mockPeople, mockVision, stubStorage{}, Config{CreateMissingPeople: true})
	defer service.Close()

	mockMedia.On("ListMediaItems", ctx, mock.Anything).
		Return([]models.MediaItem{unprocessedItem(8, "one.jpg")}, nil)
	mockVision.On("DetectFaces", ctx, mock.Anything, "one.jpg").
		Return(twoFaces()[:1], nil)
	mockVision.On("IdentifyFaces", ctx, mock.Anything).
		Return([]vision.Identification{{Name: "Nieuw Lid", Confidence: 0.3}}, nil)

	session, err := service.StartSession(ctx, 2)
	require.NoError(t, err)

	mockPeople.On("FindByName", ctx, "Nieuw Lid").Return(nil, people.ErrPersonNotFound)
	mockPeople.On("CreatePerson", ctx, mock.MatchedBy(func(p *models.Person) bool {
		return p.Name == "Nieuw Lid"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Person).ID = 99
	}).Return(nil).Once()
	mockPeople.On("IncrementFaceCount", ctx, uint(99), 1).Return(nil)
	mockMedia.On("UpdateFields", ctx, uint(8), mock.Anything).Return(&models.MediaItem{}, nil)

	result, err := service.Approve(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{99}, result.RecognizedIDs)
	// the name is still reported as unmatched so the caller can flag it
	assert.Equal(t, []string{"Nieuw Lid"}, result.Unmatched)
	mockPeople.AssertExpectations(t)
}

func TestAssignName_OverwritesSuggestion(t *testing.T) {
	mockMedia := new(MockMediaService)
	mockPeople := new(MockPeopleService)
	mockVision := new(MockVision)
	ctx := context.Background()

	service := NewService(mockMedia, mockPeople, mockVision, stubStorage{}, Config{})
	defer service.Close()

	mockMedia.On("ListMediaItems", ctx, mock.Anything).
		Return([]models.MediaItem{unprocessedItem(8, "one.jpg")}, nil)
	mockVision.On("DetectFaces", ctx, mock.Anything, "one.jpg").Return(twoFaces()[:1], nil)
	mockVision.On("IdentifyFaces", ctx, mock.Anything).
		Return([]vision.Identification{{Name: "Verkeerde Naam", Confidence: 0.5}}, nil)

	session, err := service.StartSession(ctx, 2)
	require.NoError(t, err)

	session, err = service.AssignName(session.ID, 0, "Juiste Naam")
	require.NoError(t, err)
	assert.Equal(t, "Juiste Naam", session.Faces[0].AssignedName)
	assert.Equal(t, "Verkeerde Naam", session.Faces[0].SuggestedName)

	_, err = service.AssignName(session.ID, 5, "X")
	assert.ErrorIs(t, err, ErrFaceIndexOutOfRange)
}

func TestApprove_AdvancesToNextImageThenCompletes(t *testing.T) {
	mockMedia := new(MockMediaService)
	mockPeople := new(MockPeopleService)
	mockVision := new(MockVision)
	ctx := context.Background()

	service := NewService(mockMedia, mockPeople, mockVision, stubStorage{}, Config{})
	defer service.Close()

	mockMedia.On("ListMediaItems", ctx, mock.Anything).
		Return([]models.MediaItem{unprocessedItem(1, "a.jpg"), unprocessedItem(2, "b.jpg")}, nil)
	mockVision.On("DetectFaces", ctx, mock.Anything, mock.Anything).Return([]vision.Face{}, nil)
	mockMedia.On("UpdateFields", ctx, mock.Anything, mock.Anything).Return(&models.MediaItem{}, nil)

	session, err := service.StartSession(ctx, 2)
	require.NoError(t, err)

	result, err := service.Approve(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Equal(t, uint(2), session.Current().MediaItemID)

	result, err = service.Approve(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, StateComplete, session.State)

	_, err = service.Approve(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestStartSession_NoUnprocessedImages(t *testing.T) {
	mockMedia := new(MockMediaService)
	service := NewService(mockMedia, new(MockPeopleService), new(MockVision), stubStorage{}, Config{})
	defer service.Close()
	ctx := context.Background()

	mockMedia.On("ListMediaItems", ctx, mock.Anything).Return([]models.MediaItem{}, nil)

	_, err := service.StartSession(ctx, 9)
	assert.ErrorIs(t, err, ErrNoUnprocessedImages)
}

func TestGetSession_ConcurrentAccessIsSafe(t *testing.T) {
	mockMedia := new(MockMediaService)
	mockVision := new(MockVision)
	service := NewService(mockMedia, new(MockPeopleService), mockVision, stubStorage{}, Config{})
	defer service.Close()
	ctx := context.Background()

	mockMedia.On("ListMediaItems", ctx, mock.Anything).
		Return([]models.MediaItem{unprocessedItem(1, "a.jpg")}, nil)
	mockVision.On("DetectFaces", ctx, mock.Anything, mock.Anything).Return([]vision.Face{}, nil)

	session, err := service.StartSession(ctx, 1)
	require.NoError(t, err)

	// every lookup touches LastActive, which the expiry sweeper also
	// reads; the race detector flags any unguarded touch
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.GetSession(session.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestCancel_DropsSession(t *testing.T) {
	mockMedia := new(MockMediaService)
	mockVision := new(MockVision)
	service := NewService(mockMedia, new(MockPeopleService), mockVision, stubStorage{}, Config{})
	defer service.Close()
	ctx := context.Background()

	mockMedia.On("ListMediaItems", ctx, mock.Anything).
		Return([]models.MediaItem{unprocessedItem(1, "a.jpg")}, nil)
	mockVision.On("DetectFaces", ctx, mock.Anything, mock.Anything).Return([]vision.Face{}, nil)

	session, err := service.StartSession(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, service.Cancel(session.ID))
	_, err = service.GetSession(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, service.Cancel(session.ID), ErrSessionNotFound)
}
