package people

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/internal/services/people"
)

type mockPeopleService struct {
	mock.Mock
}

func (m *mockPeopleService) CreatePerson(ctx context.Context, person *models.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *mockPeopleService) GetPersonByID(ctx context.Context, id uint) (*models.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *mockPeopleService) FindByName(ctx context.Context, name string) (*models.Person, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Person), args.Error(1)
}

func (m *mockPeopleService) ListPeople(ctx context.Context, search string) ([]models.Person, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Person), args.Error(1)
}

func (m *mockPeopleService) IncrementFaceCount(ctx context.Context, id uint, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *mockPeopleService) DeletePerson(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(t *testing.T, service people.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, &types.Dependencies{PeopleService: service})
	return router
}

func TestListPeople_PassesSearch(t *testing.T) {
	service := new(mockPeopleService)
	service.On("ListPeople", mock.Anything, "jans").Return([]models.Person{
		{Name: "Maria Janssens", FaceCount: 4},
	}, nil)
	router := newTestRouter(t, service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/people?search=jans", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.PeopleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Maria Janssens", resp.People[0].Name)
	service.AssertExpectations(t)
}

func TestCreatePerson_TrimsName(t *testing.T) {
	service := new(mockPeopleService)
	service.On("CreatePerson", mock.Anything, mock.MatchedBy(func(p *models.Person) bool {
		return p.Name == "Jan de Vries"
	})).Return(nil)
	router := newTestRouter(t, service)

	body, _ := json.Marshal(map[string]string{"name": "  Jan de Vries  "})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/people", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestGetPerson_NotFound(t *testing.T) {
	service := new(mockPeopleService)
	service.On("GetPersonByID", mock.Anything, uint(88)).Return(nil, people.ErrPersonNotFound)
	router := newTestRouter(t, service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/people/88", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePerson(t *testing.T) {
	service := new(mockPeopleService)
	service.On("DeletePerson", mock.Anything, uint(2)).Return(nil)
	router := newTestRouter(t, service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/people/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}
