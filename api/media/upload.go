package media

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/models"
)

// Upload stores an image and creates its media record
// @Summary Upload a media item
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param album_id formData int true "Album ID"
// @Success 201 {object} types.SingleMediaResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/media [post]
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			types.SendBadRequest(c, "A file is required")
			return
		}

		albumID, err := strconv.ParseUint(c.PostForm("album_id"), 10, 32)
		if err != nil || albumID == 0 {
			types.SendBadRequest(c, "A valid album_id is required")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			types.SendBadRequest(c, "Could not read uploaded file")
			return
		}
		defer file.Close()

		mimeType := fileHeader.Header.Get("Content-Type")
		objectKey := fmt.Sprintf("media/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))

		if err := deps.Storage.Upload(c.Request.Context(), objectKey, file, fileHeader.Size, mimeType); err != nil {
			log.Printf("[ERROR] Failed to store upload %s: %v", fileHeader.Filename, err)
			types.SendInternalError(c, "Failed to store file")
			return
		}

		item := &models.MediaItem{
			Filename:  filepath.Base(fileHeader.Filename),
			ObjectKey: objectKey,
			MimeType:  mimeType,
			AlbumID:   uint(albumID),
		}
		if err := deps.MediaService.CreateMediaItem(c.Request.Context(), item); err != nil {
			// Roll the stored object back so storage does not orphan it
			if delErr := deps.Storage.Delete(c.Request.Context(), objectKey); delErr != nil {
				log.Printf("[ERROR] Failed to clean up object %s: %v", objectKey, delErr)
			}
			log.Printf("[ERROR] Failed to create media record for %s: %v", fileHeader.Filename, err)
			types.SendBadRequest(c, err.Error())
			return
		}

		result := types.ToMediaItem(item, deps.Storage)
		c.JSON(201, types.SingleMediaResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Media uploaded"},
			Media:        &result,
		})
	}
}
