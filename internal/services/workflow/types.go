package workflow

import (
	"sync"
	"time"

	"github.com/artefakt/archive-api/internal/models"
)

// Kind names a workflow pipeline
type Kind string

const (
	KindClassify      Kind = "classify"
	KindMinutes       Kind = "minutes"
	KindPaintingDesc  Kind = "painting_desc"
	KindElementDetect Kind = "element_detect"
)

// ItemState tracks where a media item sits in its pipeline
type ItemState string

const (
	StateUnstaged ItemState = "UNSTAGED"
	StateRunning  ItemState = "RUNNING"
	StateReady    ItemState = "READY"
	StateSaved    ItemState = "SAVED"
)

// StageDef describes one stage of a pipeline. A stage with a
// non-empty Requires field can only run while that field holds
// content; the gate is on field content, not on a phase flag, so
// manual edits open and close stages the same way AI output does.
type StageDef struct {
	Name     string
	Output   string
	Requires string
}

var pipelineStages = map[Kind][]StageDef{
	KindClassify: {
		{Name: "classify", Output: "class"},
	},
	KindMinutes: {
		{Name: "ocr", Output: "ocr_text"},
		{Name: "translate", Output: "translated_text", Requires: "ocr_text"},
		{Name: "summarize", Output: "summarized_text", Requires: "translated_text"},
	},
	KindPaintingDesc: {
		{Name: "describe", Output: "description"},
	},
	KindElementDetect: {
		{Name: "detect", Output: "elements"},
	},
}

// editableFields lists the fields a client may overwrite per pipeline
var editableFields = map[Kind]map[string]bool{
	KindClassify: {
		"class":      true,
		"ai_caption": true,
	},
	KindMinutes: {
		"ocr_text":        true,
		"translated_text": true,
		"summarized_text": true,
		"title":           true,
	},
	KindPaintingDesc: {
		"description": true,
		"artist":      true,
		"year":        true,
	},
	KindElementDetect: {},
}

// classifyCaptions maps each classification label to its fixed
// caption text. Switching an item's label rewrites the caption to
// the label's text.
var classifyCaptions = map[string]string{
	"diplomatic":     "Official document from the organization's diplomatic correspondence.",
	"casual":         "Informal snapshot from the organization's day-to-day life.",
	"correspondence": "Letter or written exchange from the organization's archive.",
	"photograph":     "Photographic print from the organization's collection.",
	"other":          "Uncategorized item from the organization's collection.",
}

// Item is one media item's progress through a session's pipeline
type Item struct {
	MediaItemID  uint                     `json:"media_item_id"`
	Filename     string                   `json:"filename"`
	ObjectKey    string                   `json:"-"`
	MimeType     string                   `json:"mime_type"`
	State        ItemState                `json:"state"`
	Fields       map[string]string        `json:"fields"`
	Elements     []models.BoundingBox     `json:"elements,omitempty"`
	AnnotatedKey string                   `json:"annotated_key,omitempty"`
	LastError    string                   `json:"last_error,omitempty"`
}

// Session is one workflow run over a fixed list of media items.
// Items progress independently; the mutex guards state transitions,
// not the AI calls themselves.
type Session struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	AlbumID    uint      `json:"album_id,omitempty"`
	Items      []*Item   `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`

	mu sync.Mutex
}

// item returns the session item for the media ID, or nil
func (s *Session) item(mediaItemID uint) *Item {
	for _, it := range s.Items {
		if it.MediaItemID == mediaItemID {
			return it
		}
	}
	return nil
}

// Stages returns the pipeline definition for the session's kind
func (s *Session) Stages() []StageDef {
	return pipelineStages[s.Kind]
}
