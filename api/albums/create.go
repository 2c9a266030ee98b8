package albums

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/models"
)

// CreateRequest is the payload for creating an album
type CreateRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type"`
}

// Create makes a new album
// @Summary Create an album
// @Tags albums
// @Accept json
// @Produce json
// @Param album body CreateRequest true "Album"
// @Success 201 {object} types.SingleAlbumResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/albums [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		albumType := models.AlbumType(req.Type)
		if albumType == "" {
			albumType = models.AlbumTypeGeneral
		}

		album := &models.Album{
			Name: strings.TrimSpace(req.Name),
			Type: albumType,
		}
		if err := deps.AlbumService.CreateAlbum(c.Request.Context(), album); err != nil {
			log.Printf("[DEBUG] Album create rejected: %v", err)
			types.SendBadRequest(c, err.Error())
			return
		}

		result := types.ToAlbum(album)
		c.JSON(201, types.SingleAlbumResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Album created"},
			Album:        &result,
		})
	}
}
