package albums

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/albums"
)

// Get returns one album by ID
// @Summary Get an album
// @Tags albums
// @Produce json
// @Param id path int true "Album ID"
// @Success 200 {object} types.SingleAlbumResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/albums/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		album, err := deps.AlbumService.GetAlbumByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, albums.ErrAlbumNotFound) {
				types.SendNotFound(c, "Album not found")
				return
			}
			log.Printf("[ERROR] Failed to get album %d: %v", id, err)
			types.SendInternalError(c, "Failed to get album")
			return
		}

		result := types.ToAlbum(album)
		c.JSON(200, types.SingleAlbumResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Album:        &result,
		})
	}
}
