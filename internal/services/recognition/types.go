package recognition

import (
	"sync"
	"time"

	"github.com/artefakt/archive-api/internal/services/vision"
)

// ImageState tracks the approval pipeline for the current image
type ImageState string

const (
	StateLoadingFaces ImageState = "LOADING_FACES"
	StateFacesReady   ImageState = "FACES_READY"
	StateComplete     ImageState = "COMPLETE"
)

// FaceAssignment is one detected face with its suggested and
// currently assigned name. AssignedName is free text and may be
// overwritten before approval; an empty value means the face is
// skipped.
type FaceAssignment struct {
	Index         int         `json:"index"`
	Box           vision.Face `json:"box"`
	SuggestedName string      `json:"suggested_name"`
	Confidence    float64     `json:"confidence"`
	AssignedName  string      `json:"assigned_name"`
}

// QueueEntry is one unprocessed image waiting in the session
type QueueEntry struct {
	MediaItemID uint   `json:"media_item_id"`
	Filename    string `json:"filename"`
	ObjectKey   string `json:"-"`
}

// Session walks an album's unprocessed images one at a time
type Session struct {
	ID           string           `json:"id"`
	AlbumID      uint             `json:"album_id"`
	Queue        []QueueEntry     `json:"queue"`
	CurrentIndex int              `json:"current_index"`
	State        ImageState       `json:"state"`
	Faces        []FaceAssignment `json:"faces"`
	Approved     int              `json:"approved"`
	CreatedAt    time.Time        `json:"created_at"`
	LastActive   time.Time        `json:"last_active"`

	mu sync.Mutex
}

// Current returns the image under review, or nil when the session
// is complete
func (s *Session) Current() *QueueEntry {
	if s.CurrentIndex >= len(s.Queue) {
		return nil
	}
	return &s.Queue[s.CurrentIndex]
}
