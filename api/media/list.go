package media

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/media"
)

// List returns media items, filtered by album, search text, or
// facial-recognition status
// @Summary List media items
// @Tags media
// @Produce json
// @Param album_id query int false "Restrict to one album"
// @Param search query string false "Filename substring"
// @Param unprocessed query bool false "Only items not yet face-processed"
// @Success 200 {object} types.MediaListResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /api/v1/media [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := media.ListOptions{
			Search: c.Query("search"),
		}
		if raw := c.Query("album_id"); raw != "" {
			albumID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				types.SendBadRequest(c, "Invalid album_id")
				return
			}
			opts.AlbumID = uint(albumID)
		}
		if raw := c.Query("unprocessed"); raw != "" {
			unprocessed, err := strconv.ParseBool(raw)
			if err != nil {
				types.SendBadRequest(c, "Invalid unprocessed flag")
				return
			}
			opts.UnprocessedOnly = unprocessed
		}

		items, err := deps.MediaService.ListMediaItems(c.Request.Context(), opts)
		if err != nil {
			log.Printf("[ERROR] Failed to list media: %v", err)
			types.SendInternalError(c, "Failed to list media")
			return
		}

		c.JSON(200, types.MediaListResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Media:        types.ToMediaItems(items, deps.Storage),
			Count:        len(items),
		})
	}
}
