package albums

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/albums"
)

// Delete removes an album
// @Summary Delete an album
// @Tags albums
// @Produce json
// @Param id path int true "Album ID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/albums/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.AlbumService.DeleteAlbum(c.Request.Context(), id); err != nil {
			if errors.Is(err, albums.ErrAlbumNotFound) {
				types.SendNotFound(c, "Album not found")
				return
			}
			log.Printf("[ERROR] Failed to delete album %d: %v", id, err)
			types.SendInternalError(c, "Failed to delete album")
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Album deleted"})
	}
}
