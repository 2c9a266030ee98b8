package workflows

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
	"github.com/artefakt/archive-api/internal/services/workflow"
)

type mockWorkflowService struct {
	mock.Mock
}

func (m *mockWorkflowService) CreateSession(ctx context.Context, kind workflow.Kind, mediaItemIDs []uint) (*workflow.Session, error) {
	args := m.Called(ctx, kind, mediaItemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Session), args.Error(1)
}

func (m *mockWorkflowService) GetSession(sessionID string) (*workflow.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Session), args.Error(1)
}

func (m *mockWorkflowService) RunStage(ctx context.Context, sessionID string, mediaItemID uint, stage string) (*workflow.Item, error) {
	args := m.Called(ctx, sessionID, mediaItemID, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Item), args.Error(1)
}

func (m *mockWorkflowService) UpdateField(sessionID string, mediaItemID uint, field, value string) (*workflow.Item, error) {
	args := m.Called(sessionID, mediaItemID, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Item), args.Error(1)
}

func (m *mockWorkflowService) ProcessAll(ctx context.Context, sessionID string) ([]*workflow.Item, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workflow.Item), args.Error(1)
}

func (m *mockWorkflowService) SaveItem(ctx context.Context, sessionID string, mediaItemID uint) (*workflow.Item, error) {
	args := m.Called(ctx, sessionID, mediaItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.Item), args.Error(1)
}

func (m *mockWorkflowService) SaveAll(ctx context.Context, sessionID string) (*workflow.SaveReport, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workflow.SaveReport), args.Error(1)
}

func (m *mockWorkflowService) CancelSession(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func newTestRouter(t *testing.T, service workflow.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, &types.Dependencies{WorkflowService: service})
	return router
}

func TestCreate_StartsSessionOfRequestedKind(t *testing.T) {
	service := new(mockWorkflowService)
	service.On("CreateSession", mock.Anything, workflow.KindMinutes, []uint{3, 1}).Return(&workflow.Session{
		ID:   "sess-1",
		Kind: workflow.KindMinutes,
		Items: []*workflow.Item{
			{MediaItemID: 3, State: workflow.StateUnstaged, Fields: map[string]string{}},
			{MediaItemID: 1, State: workflow.StateUnstaged, Fields: map[string]string{}},
		},
	}, nil)
	router := newTestRouter(t, service)

	body, _ := json.Marshal(map[string]interface{}{"kind": "minutes", "media_ids": []uint{3, 1}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workflows", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.Session.ID)
	require.Len(t, resp.Session.Items, 2)
	assert.Equal(t, uint(3), resp.Session.Items[0].MediaItemID)
	service.AssertExpectations(t)
}

func TestCreate_NothingSelected(t *testing.T) {
	service := new(mockWorkflowService)
	service.On("CreateSession", mock.Anything, workflow.KindClassify, []uint(nil)).
		Return(nil, workflow.ErrNothingSelected)
	router := newTestRouter(t, service)

	body, _ := json.Marshal(map[string]string{"kind": "classify"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workflows", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_UnknownSession(t *testing.T) {
	service := new(mockWorkflowService)
	service.On("GetSession", "missing").Return(nil, workflow.ErrSessionNotFound)
	router := newTestRouter(t, service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/workflows/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunStage_ConflictWhileRunning(t *testing.T) {
	service := new(mockWorkflowService)
	service.On("RunStage", mock.Anything, "sess-1", uint(3), "ocr").
		Return(nil, workflow.ErrStageRunning)
	router := newTestRouter(t, service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workflows/sess-1/items/3/stages/ocr", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateField_ReturnsUpdatedItem(t *testing.T) {
	service := new(mockWorkflowService)
	service.On("UpdateField", "sess-1", uint(3), "ocr_text", "corrected text").Return(&workflow.Item{
		MediaItemID: 3,
		State:       workflow.StateReady,
		Fields:      map[string]string{"ocr_text": "corrected text"},
	}, nil)
	router := newTestRouter(t, service)

	body, _ := json.Marshal(map[string]string{"field": "ocr_text", "value": "corrected text"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/workflows/sess-1/items/3", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "corrected text", resp.Item.Fields["ocr_text"])
	assert.Equal(t, workflow.StateReady, resp.Item.State)
}

func TestSaveAll_ReportsPartialFailure(t *testing.T) {
	service := new(mockWorkflowService)
	service.On("SaveAll", mock.Anything, "sess-1").Return(&workflow.SaveReport{
		Saved:  []uint{1, 3},
		Failed: []workflow.FailedSave{{MediaItemID: 2, Error: "Cannot save before OCR text exists"}},
	}, nil)
	router := newTestRouter(t, service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workflows/sess-1/save-all", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SaveAllResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []uint{1, 3}, resp.Report.Saved)
	require.Len(t, resp.Report.Failed, 1)
	assert.Equal(t, uint(2), resp.Report.Failed[0].MediaItemID)
}

func TestCancel_DropsSession(t *testing.T) {
	service := new(mockWorkflowService)
	service.On("CancelSession", "sess-1").Return(nil)
	router := newTestRouter(t, service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/workflows/sess-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}
