package albums

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/models"
)

// List returns albums, optionally filtered by type
// @Summary List albums
// @Tags albums
// @Produce json
// @Param type query string false "Album type (general, painting, minute, events)"
// @Success 200 {object} types.AlbumsResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/v1/albums [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		albumType := models.AlbumType(c.Query("type"))

		albums, err := deps.AlbumService.ListAlbums(c.Request.Context(), albumType)
		if err != nil {
			log.Printf("[ERROR] Failed to list albums: %v", err)
			types.SendInternalError(c, "Failed to list albums")
			return
		}

		c.JSON(200, types.AlbumsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Albums:       types.ToAlbums(albums),
			Count:        len(albums),
		})
	}
}
