package albums

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/albums"
)

// RenameRequest is the payload for renaming an album
type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

// Rename changes an album's name
// @Summary Rename an album
// @Tags albums
// @Accept json
// @Produce json
// @Param id path int true "Album ID"
// @Param album body RenameRequest true "New name"
// @Success 200 {object} types.SingleAlbumResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/albums/{id} [put]
func Rename(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req RenameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		album, err := deps.AlbumService.RenameAlbum(c.Request.Context(), id, req.Name)
		if err != nil {
			if errors.Is(err, albums.ErrAlbumNotFound) {
				types.SendNotFound(c, "Album not found")
				return
			}
			log.Printf("[ERROR] Failed to rename album %d: %v", id, err)
			types.SendBadRequest(c, err.Error())
			return
		}

		result := types.ToAlbum(album)
		c.JSON(200, types.SingleAlbumResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Album renamed"},
			Album:        &result,
		})
	}
}
