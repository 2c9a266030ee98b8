package types

import (
	"time"

	"github.com/artefakt/archive-api/internal/models"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MediaItem is the wire representation of a media record
type MediaItem struct {
	ID             uint      `json:"id"`
	Filename       string    `json:"filename"`
	FileURL        string    `json:"file_url"`
	MimeType       string    `json:"mime_type"`
	AlbumID        uint      `json:"album_id"`
	Class          string    `json:"class,omitempty"`
	AICaption      string    `json:"ai_caption,omitempty"`
	OCRText        string    `json:"ocr_text,omitempty"`
	TranslatedText string    `json:"translated_text,omitempty"`
	SummarizedText string    `json:"summarized_text,omitempty"`
	FaceProcessed  bool      `json:"face_processed"`
	RecognizedIDs  []uint    `json:"recognized_people,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Album is the wire representation of an album
type Album struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Person is the wire representation of a person
type Person struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	FaceCount int    `json:"face_count"`
}

// MediaListResponse for media galleries
type MediaListResponse struct {
	BaseResponse
	Media []MediaItem `json:"media"`
	Count int         `json:"count"`
}

// SingleMediaResponse for one media record
type SingleMediaResponse struct {
	BaseResponse
	Media *MediaItem `json:"media"`
}

// AlbumsResponse for album lists
type AlbumsResponse struct {
	BaseResponse
	Albums []Album `json:"albums"`
	Count  int     `json:"count"`
}

// SingleAlbumResponse for one album
type SingleAlbumResponse struct {
	BaseResponse
	Album *Album `json:"album"`
}

// PeopleResponse for person lists
type PeopleResponse struct {
	BaseResponse
	People []Person `json:"people"`
	Count  int      `json:"count"`
}

// SinglePersonResponse for one person
type SinglePersonResponse struct {
	BaseResponse
	Person *Person `json:"person"`
}

// SelectionResponse echoes a selection scope's contents
type SelectionResponse struct {
	BaseResponse
	Scope string `json:"scope"`
	IDs   []uint `json:"ids"`
	Count int    `json:"count"`
}

// BulkDeleteResponse reports a partial-failure bulk delete
type BulkDeleteResponse struct {
	BaseResponse
	Deleted []uint             `json:"deleted"`
	Failed  []BulkDeleteFailed `json:"failed"`
}

// BulkDeleteFailed is one item that could not be deleted
type BulkDeleteFailed struct {
	ID    uint   `json:"id"`
	Error string `json:"error"`
}

// LoginResponse carries the session token and user
type LoginResponse struct {
	BaseResponse
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the wire representation of an account
type User struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Painting is the wire representation of a painting record
type Painting struct {
	ID          uint   `json:"id"`
	MediaItemID uint   `json:"media_item_id"`
	Description string `json:"description"`
	Artist      string `json:"artist,omitempty"`
	Year        string `json:"year,omitempty"`
}

// PaintingsResponse for painting record lists
type PaintingsResponse struct {
	BaseResponse
	Paintings []Painting `json:"paintings"`
	Count     int        `json:"count"`
}

// SinglePaintingResponse for one painting record
type SinglePaintingResponse struct {
	BaseResponse
	Painting *Painting `json:"painting"`
}

// Minute is the wire representation of a meeting minute record
type Minute struct {
	ID             uint   `json:"id"`
	MediaItemID    uint   `json:"media_item_id"`
	Title          string `json:"title,omitempty"`
	OCRText        string `json:"ocr_text,omitempty"`
	TranslatedText string `json:"translated_text,omitempty"`
	SummarizedText string `json:"summarized_text,omitempty"`
}

// MinutesResponse for meeting minute lists
type MinutesResponse struct {
	BaseResponse
	Minutes []Minute `json:"minutes"`
	Count   int      `json:"count"`
}

// SingleMinuteResponse for one meeting minute record
type SingleMinuteResponse struct {
	BaseResponse
	Minute *Minute `json:"minute"`
}

// Detection is the wire representation of an element detection record
type Detection struct {
	ID           uint                 `json:"id"`
	MediaItemID  uint                 `json:"media_item_id"`
	Boxes        []models.BoundingBox `json:"boxes"`
	AnnotatedURL string               `json:"annotated_url,omitempty"`
	Status       string               `json:"status"`
}

// DetectionsResponse for detection record lists
type DetectionsResponse struct {
	BaseResponse
	Detections []Detection `json:"detections"`
	Count      int         `json:"count"`
}

// SingleDetectionResponse for one detection record
type SingleDetectionResponse struct {
	BaseResponse
	Detection *Detection `json:"detection"`
}
