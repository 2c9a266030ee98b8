package media

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/media"
)

// Get returns one media item by ID
// @Summary Get a media item
// @Tags media
// @Produce json
// @Param id path int true "Media item ID"
// @Success 200 {object} types.SingleMediaResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/media/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
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
			log.Printf("[ERROR] Failed to get media %d: %v", id, err)
			types.SendInternalError(c, "Failed to get media item")
			return
		}

		result := types.ToMediaItem(item, deps.Storage)
		c.JSON(200, types.SingleMediaResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Media:        &result,
		})
	}
}
