package workflows

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/workflow"
)

// CreateRequest starts a workflow session
type CreateRequest struct {
	Kind     string `json:"kind" binding:"required"`
	MediaIDs []uint `json:"media_ids"`
}

// UpdateFieldRequest overwrites one editable result field
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SessionResponse wraps a workflow session
type SessionResponse struct {
	types.BaseResponse
	Session *workflow.Session `json:"session"`
}

// ItemResponse wraps one workflow item
type ItemResponse struct {
	types.BaseResponse
	Item *workflow.Item `json:"item"`
}

// ItemsResponse wraps multiple workflow items
type ItemsResponse struct {
	types.BaseResponse
	Items []*workflow.Item `json:"items"`
}

// SaveAllResponse wraps a save-all report
type SaveAllResponse struct {
	types.BaseResponse
	Report *workflow.SaveReport `json:"report"`
}

func sendWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workflow.ErrSessionNotFound):
		types.SendNotFound(c, "Workflow session not found")
	case errors.Is(err, workflow.ErrItemNotFound):
		types.SendNotFound(c, "Media item not in session")
	case errors.Is(err, workflow.ErrStageRunning):
		c.JSON(http.StatusConflict, types.ErrorResponse{Error: err.Error()})
	case errors.Is(err, workflow.ErrNothingSelected):
		types.SendBadRequest(c, err.Error())
	default:
		types.SendBadRequest(c, err.Error())
	}
}

// Create starts a workflow session
// @Summary Start a workflow session
// @Tags workflows
// @Accept json
// @Produce json
// @Param session body CreateRequest true "Session kind and optional explicit media IDs"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/workflows [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.WorkflowService.CreateSession(c.Request.Context(), workflow.Kind(req.Kind), req.MediaIDs)
		if err != nil {
			log.Printf("[DEBUG] Workflow create rejected: %v", err)
			sendWorkflowError(c, err)
			return
		}

		c.JSON(201, SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Workflow session started"},
			Session:      session,
		})
	}
}

// Get returns a workflow session
// @Summary Get a workflow session
// @Tags workflows
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/workflows/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.WorkflowService.GetSession(c.Param("id"))
		if err != nil {
			sendWorkflowError(c, err)
			return
		}

		c.JSON(200, SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Session:      session,
		})
	}
}

// RunStage executes one pipeline stage for one item
// @Summary Run a pipeline stage
// @Tags workflows
// @Produce json
// @Param id path string true "Session ID"
// @Param mediaId path int true "Media item ID"
// @Param stage path string true "Stage name"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 409 {object} types.ErrorResponse
// @Router /api/v1/workflows/{id}/items/{mediaId}/stages/{stage} [post]
func RunStage(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "mediaId")
		if !ok {
			return
		}

		item, err := deps.WorkflowService.RunStage(c.Request.Context(), c.Param("id"), mediaID, c.Param("stage"))
		if err != nil {
			sendWorkflowError(c, err)
			return
		}

		c.JSON(200, ItemResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Item:         item,
		})
	}
}

// UpdateField overwrites one editable field on an item
// @Summary Edit a workflow result field
// @Tags workflows
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param mediaId path int true "Media item ID"
// @Param update body UpdateFieldRequest true "Field and value"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/workflows/{id}/items/{mediaId} [patch]
func UpdateField(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "mediaId")
		if !ok {
			return
		}

		var req UpdateFieldRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		item, err := deps.WorkflowService.UpdateField(c.Param("id"), mediaID, req.Field, req.Value)
		if err != nil {
			sendWorkflowError(c, err)
			return
		}

		c.JSON(200, ItemResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Item:         item,
		})
	}
}

// ProcessAll runs the first stage for every item in the session
// @Summary Process every item
// @Tags workflows
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ItemsResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/workflows/{id}/process-all [post]
func ProcessAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.WorkflowService.ProcessAll(c.Request.Context(), c.Param("id"))
		if err != nil {
			sendWorkflowError(c, err)
			return
		}

		c.JSON(200, ItemsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Items:        items,
		})
	}
}

// SaveItem persists one item's results
// @Summary Save one item
// @Tags workflows
// @Produce json
// @Param id path string true "Session ID"
// @Param mediaId path int true "Media item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/workflows/{id}/items/{mediaId}/save [post]
func SaveItem(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "mediaId")
		if !ok {
			return
		}

		item, err := deps.WorkflowService.SaveItem(c.Request.Context(), c.Param("id"), mediaID)
		if err != nil {
			sendWorkflowError(c, err)
			return
		}

		c.JSON(200, ItemResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Item saved"},
			Item:         item,
		})
	}
}

// SaveAll persists every ready item and reports per-item outcomes
// @Summary Save all items
// @Tags workflows
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SaveAllResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/workflows/{id}/save-all [post]
func SaveAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := deps.WorkflowService.SaveAll(c.Request.Context(), c.Param("id"))
		if err != nil {
			sendWorkflowError(c, err)
			return
		}

		c.JSON(200, SaveAllResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Report:       report,
		})
	}
}

// Cancel drops a workflow session without saving
// @Summary Cancel a workflow session
// @Tags workflows
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/workflows/{id} [delete]
func Cancel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.WorkflowService.CancelSession(c.Param("id")); err != nil {
			sendWorkflowError(c, err)
			return
		}
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Workflow session cancelled"})
	}
}
