package detections

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/internal/services/detections"
)

// List returns element detection records, optionally filtered by status
// @Summary List element detections
// @Tags detections
// @Produce json
// @Param status query string false "Detection status (pending, detected, saved)"
// @Success 200 {object} types.DetectionsResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/v1/detections [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.DetectionStatus(c.Query("status"))

		records, err := deps.DetectionService.ListDetections(c.Request.Context(), status)
		if err != nil {
			log.Printf("[ERROR] Failed to list detections: %v", err)
			types.SendInternalError(c, "Failed to list detections")
			return
		}

		c.JSON(200, types.DetectionsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Detections:   types.ToDetections(records, deps.Storage),
			Count:        len(records),
		})
	}
}

// GetByMedia returns the detection record for one media item
// @Summary Get the detection record for a media item
// @Tags detections
// @Produce json
// @Param mediaId path int true "Media item ID"
// @Success 200 {object} types.SingleDetectionResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/detections/media/{mediaId} [get]
func GetByMedia(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaID, ok := types.ParseUintParam(c, "mediaId")
		if !ok {
			return
		}

		record, err := deps.DetectionService.GetDetectionByMediaItemID(c.Request.Context(), mediaID)
		if err != nil {
			if errors.Is(err, detections.ErrDetectionNotFound) {
				types.SendNotFound(c, "No detection record for this media item")
				return
			}
			log.Printf("[ERROR] Failed to get detection for media %d: %v", mediaID, err)
			types.SendInternalError(c, "Failed to get detection record")
			return
		}

		result := types.ToDetection(record, deps.Storage)
		c.JSON(200, types.SingleDetectionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Detection:    &result,
		})
	}
}
