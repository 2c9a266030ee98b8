package selection

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/media"
	"github.com/artefakt/archive-api/internal/services/selection"
)

// ReplaceRequest is the payload for replacing a scope's selection
type ReplaceRequest struct {
	IDs []uint `json:"ids"`
}

// StageClassifyRequest stages a classification batch
type StageClassifyRequest struct {
	MediaItemIDs []uint `json:"media_ids" binding:"required"`
	AlbumID      uint   `json:"album_id"`
}

// StageTextRequest stages a text-pipeline batch behind a scope
type StageTextRequest struct {
	MediaItemIDs []uint `json:"media_ids" binding:"required"`
	AlbumID      uint   `json:"album_id"`
}

func scopeStore(c *gin.Context, deps *types.Dependencies) (*selection.Store, selection.Scope, bool) {
	scope := selection.Scope(c.Param("scope"))
	store, ok := deps.Selections.Lookup(scope)
	if !ok {
		types.SendNotFound(c, "Unknown selection scope")
		return nil, "", false
	}
	return store, scope, true
}

// Get returns the current selection for a scope
// @Summary Get a selection
// @Tags selection
// @Produce json
// @Param scope path string true "Selection scope"
// @Success 200 {object} types.SelectionResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/selection/{scope} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, scope, ok := scopeStore(c, deps)
		if !ok {
			return
		}

		ids := store.Get()
		c.JSON(200, types.SelectionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Scope:        string(scope),
			IDs:          ids,
			Count:        len(ids),
		})
	}
}

// Replace overwrites the selection for a scope
// @Summary Replace a selection
// @Tags selection
// @Accept json
// @Produce json
// @Param scope path string true "Selection scope"
// @Param selection body ReplaceRequest true "Media item IDs, in display order"
// @Success 200 {object} types.SelectionResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/selection/{scope} [put]
func Replace(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, scope, ok := scopeStore(c, deps)
		if !ok {
			return
		}

		var req ReplaceRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		store.Replace(req.IDs)
		ids := store.Get()
		c.JSON(200, types.SelectionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Selection replaced"},
			Scope:        string(scope),
			IDs:          ids,
			Count:        len(ids),
		})
	}
}

// Clear empties the selection for a scope
// @Summary Clear a selection
// @Tags selection
// @Produce json
// @Param scope path string true "Selection scope"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/selection/{scope} [delete]
func Clear(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, _, ok := scopeStore(c, deps)
		if !ok {
			return
		}

		store.Clear()
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Selection cleared"})
	}
}

// StageClassify snapshots the chosen media records and stages them for
// the classification workflow
// @Summary Stage a classification batch
// @Tags selection
// @Accept json
// @Produce json
// @Param batch body StageClassifyRequest true "Media item IDs"
// @Success 200 {object} types.BaseResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/selection/staging/classify [post]
func StageClassify(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StageClassifyRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if len(req.MediaItemIDs) == 0 {
			types.SendBadRequest(c, "No media selected")
			return
		}

		items, err := deps.MediaService.GetMediaItemsByIDs(c.Request.Context(), req.MediaItemIDs)
		if err != nil {
			if errors.Is(err, media.ErrMediaItemNotFound) {
				types.SendNotFound(c, "Media item not found")
				return
			}
			log.Printf("[ERROR] Failed to snapshot classify batch: %v", err)
			types.SendInternalError(c, "Failed to stage batch")
			return
		}

		deps.Staging.PutClassifyBatch(selection.ClassifyBatch{
			Items:   items,
			AlbumID: req.AlbumID,
		})
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Classification batch staged"})
	}
}

// StageText stages media IDs for a text pipeline scope
// @Summary Stage a text pipeline batch
// @Tags selection
// @Accept json
// @Produce json
// @Param scope path string true "Target scope"
// @Param batch body StageTextRequest true "Media item IDs"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/selection/staging/text/{scope} [post]
func StageText(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := selection.Scope(c.Param("scope"))
		if _, ok := deps.Selections.Lookup(scope); !ok {
			types.SendNotFound(c, "Unknown selection scope")
			return
		}

		var req StageTextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if len(req.MediaItemIDs) == 0 {
			types.SendBadRequest(c, "No media selected")
			return
		}

		deps.Staging.PutTextBatch(scope, selection.TextBatch{
			MediaItemIDs: req.MediaItemIDs,
			AlbumID:      req.AlbumID,
		})
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Text batch staged"})
	}
}

// FlagResponse reports whether a one-shot flag was set
type FlagResponse struct {
	types.BaseResponse
	Name string `json:"name"`
	Set  bool   `json:"set"`
}

// TakeFlag reads and consumes a named one-shot flag
// @Summary Consume a one-shot flag
// @Tags selection
// @Produce json
// @Param name path string true "Flag name"
// @Success 200 {object} FlagResponse
// @Router /api/v1/selection/flags/{name} [get]
func TakeFlag(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		c.JSON(200, FlagResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Name:         name,
			Set:          deps.Staging.TakeFlag(name),
		})
	}
}
