package recognition

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
	"github.com/artefakt/archive-api/internal/services/recognition"
)

// CreateRequest starts an approval session for an album
type CreateRequest struct {
	AlbumID uint `json:"album_id" binding:"required"`
}

// AssignNameRequest names one face of the current image
type AssignNameRequest struct {
	Name string `json:"name"`
}

// SessionResponse wraps a recognition session
type SessionResponse struct {
	types.BaseResponse
	Session *recognition.Session `json:"session"`
}

// ApprovalResponse wraps what approval persisted
type ApprovalResponse struct {
	types.BaseResponse
	Result *recognition.ApprovalResult `json:"result"`
}

func sendRecognitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recognition.ErrSessionNotFound):
		types.SendNotFound(c, "Recognition session not found")
	case errors.Is(err, recognition.ErrSessionComplete):
		c.JSON(http.StatusConflict, types.ErrorResponse{Error: err.Error()})
	case errors.Is(err, recognition.ErrFaceIndexOutOfRange):
		types.SendBadRequest(c, err.Error())
	case errors.Is(err, recognition.ErrNoUnprocessedImages):
		types.SendBadRequest(c, err.Error())
	default:
		types.SendBadRequest(c, err.Error())
	}
}

// Create starts an approval session
// @Summary Start a recognition session
// @Tags recognition
// @Accept json
// @Produce json
// @Param session body CreateRequest true "Album to review"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/recognition [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.RecognitionService.StartSession(c.Request.Context(), req.AlbumID)
		if err != nil {
			log.Printf("[DEBUG] Recognition session rejected for album %d: %v", req.AlbumID, err)
			sendRecognitionError(c, err)
			return
		}

		c.JSON(201, SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Recognition session started"},
			Session:      session,
		})
	}
}

// Get returns a recognition session
// @Summary Get a recognition session
// @Tags recognition
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/recognition/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.RecognitionService.GetSession(c.Param("id"))
		if err != nil {
			sendRecognitionError(c, err)
			return
		}

		c.JSON(200, SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Session:      session,
		})
	}
}

// AssignName overwrites the name for one face of the current image
// @Summary Assign a name to a face
// @Tags recognition
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Face index"
// @Param assignment body AssignNameRequest true "Name, empty to clear"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/recognition/{id}/faces/{index} [put]
func AssignName(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, ok := types.ParseIntParam(c, "index")
		if !ok {
			return
		}

		var req AssignNameRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.RecognitionService.AssignName(c.Param("id"), index, req.Name)
		if err != nil {
			sendRecognitionError(c, err)
			return
		}

		c.JSON(200, SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Session:      session,
		})
	}
}

// Approve persists the current image's assignments and advances
// @Summary Approve the current image
// @Tags recognition
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ApprovalResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 409 {object} types.ErrorResponse
// @Router /api/v1/recognition/{id}/approve [post]
func Approve(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := deps.RecognitionService.Approve(c.Request.Context(), c.Param("id"))
		if err != nil {
			sendRecognitionError(c, err)
			return
		}

		c.JSON(200, ApprovalResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Image approved"},
			Result:       result,
		})
	}
}

// Cancel ends a session without persisting the current image
// @Summary Cancel a recognition session
// @Tags recognition
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/recognition/{id} [delete]
func Cancel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.RecognitionService.Cancel(c.Param("id")); err != nil {
			sendRecognitionError(c, err)
			return
		}
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Recognition session cancelled"})
	}
}
