package minutes

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/minutes"
)

// List returns all meeting minute records
// @Summary List meeting minute records
// @Tags minutes
// @Produce json
// @Success 200 {object} types.MinutesResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/v1/minutes [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := deps.MinuteService.ListMinutes(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list minutes: %v", err)
			types.SendInternalError(c, "Failed to list minutes")
			return
		}

		c.JSON(200, types.MinutesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Minutes:      types.ToMinutes(records),
			Count:        len(records),
		})
	}
}

// GetByMedia returns the minute record for one media item
// @Summary Get the minute record for a media item
// @Tags minutes
// @Produce json
// @Param mediaId path int true "Media item ID"
// @Success 200 {object} types.SingleMinuteResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/minutes/media/{mediaId} [get]
func GetByMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "mediaId")
		if !ok {
			return
		}

		record, err := deps.MinuteService.GetMinuteByMediaItemID(c.Request.Context(), mediaID)
		if err != nil {
			if errors.Is(err, minutes.ErrMinuteNotFound) {
				types.SendNotFound(c, "No minute record for this media item")
				return
			}
			log.Printf("[ERROR] Failed to get minute for media %d: %v", mediaID, err)
			types.SendInternalError(c, "Failed to get minute record")
			return
		}

		result := types.ToMinute(record)
		c.JSON(200, types.SingleMinuteResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Minute:       &result,
		})
	}
}
