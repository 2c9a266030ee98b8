package paintings

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/paintings"
)

// List returns all painting records
// @Summary List painting records
// @Tags paintings
// @Produce json
// @Success 200 {object} types.PaintingsResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/v1/paintings [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := deps.PaintingService.ListPaintings(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list paintings: %v", err)
			types.SendInternalError(c, "Failed to list paintings")
			return
		}

		c.JSON(200, types.PaintingsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Paintings:    types.ToPaintings(records),
			Count:        len(records),
		})
	}
}

// GetByMedia returns the painting record for one media item
// @Summary Get the painting record for a media item
// @Tags paintings
// @Produce json
// @Param mediaId path int true "Media item ID"
// @Success 200 {object} types.SinglePaintingResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/paintings/media/{mediaId} [get]
func GetByMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "mediaId")
		if !ok {
			return
		}

		record, err := deps.PaintingService.GetPaintingByMediaItemID(c.Request.Context(), mediaID)
		if err != nil {
			if errors.Is(err, paintings.ErrPaintingNotFound) {
				types.SendNotFound(c, "No painting record for this media item")
				return
			}
			log.Printf("[ERROR] Failed to get painting for media %d: %v", mediaID, err)
			types.SendInternalError(c, "Failed to get painting record")
			return
		}

		result := types.ToPainting(record)
		c.JSON(200, types.SinglePaintingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Painting:     &result,
		})
	}
}
