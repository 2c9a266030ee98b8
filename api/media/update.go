package media

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/media"
)

// Update applies a partial update to a media item's annotation fields
// @Summary Update media annotations
// @Tags media
// @Accept json
// @Produce json
// @Param id path int true "Media item ID"
// @Param fields body map[string]interface{} true "Fields to update"
// @Success 200 {object} types.SingleMediaResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/media/{id} [patch]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var fields map[string]interface{}
		if !types.BindJSONOrError(c, &fields) {
			return
		}
		if len(fields) == 0 {
			types.SendBadRequest(c, "No fields to update")
			return
		}

		item, err := deps.MediaService.UpdateFields(c.Request.Context(), id, fields)
		if err != nil {
			if errors.Is(err, media.ErrMediaItemNotFound) {
				types.SendNotFound(c, "Media item not found")
				return
			}
			log.Printf("[DEBUG] Media update rejected for %d: %v", id, err)
			types.SendBadRequest(c, err.Error())
			return
		}

		result := types.ToMediaItem(item, deps.Storage)
		c.JSON(200, types.SingleMediaResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Media updated"},
			Media:        &result,
		})
	}
}
