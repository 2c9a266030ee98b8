package media

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/media"
)

// Delete removes a media item
// @Summary Delete a media item
// @Tags media
// @Produce json
// @Param id path int true "Media item ID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/media/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		item, err := deps.MediaService.GetMediaItemByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, media.ErrMediaItemNotFound) {
				types.SendNotFound(c, "Media item not found")
				return
			}
			log.Printf("[ERROR] Failed to look up media %d: %v", id, err)
			types.SendInternalError(c, "Failed to delete media item")
			return
		}

		if err := deps.MediaService.DeleteMediaItem(c.Request.Context(), id); err != nil {
			log.Printf("[ERROR] Failed to delete media %d: %v", id, err)
			types.SendInternalError(c, "Failed to delete media item")
			return
		}

		// Object removal is best effort once the record is gone
		if err := deps.Storage.Delete(c.Request.Context(), item.ObjectKey); err != nil {
			log.Printf("[ERROR] Failed to delete object %s: %v", item.ObjectKey, err)
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Media deleted"})
	}
}

// BulkDeleteRequest lists the media IDs to remove
type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// BulkDelete deletes multiple media items and reports per-item outcomes
// @Summary Bulk delete media items
// @Tags media
// @Accept json
// @Produce json
// @Param ids body BulkDeleteRequest true "Media item IDs"
// @Success 200 {object} types.BulkDeleteResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/media/bulk-delete [post]
func BulkDelete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkDeleteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if len(req.IDs) == 0 {
			types.SendBadRequest(c, "No media IDs given")
			return
		}

		report := deps.MediaService.BulkDelete(c.Request.Context(), req.IDs)

		failed := make([]types.BulkDeleteFailed, 0, len(report.Failed))
		for _, f := range report.Failed {
			failed = append(failed, types.BulkDeleteFailed{ID: f.ID, Error: f.Error})
		}

		c.JSON(200, types.BulkDeleteResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Deleted:      report.Deleted,
			Failed:       failed,
		})
	}
}
