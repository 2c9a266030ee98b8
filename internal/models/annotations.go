package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Painting holds curator metadata and the AI description for a painting
// media item. The media reference is 1:1; uniqueness is enforced by the
// unique index on MediaItemID so concurrent saves cannot create
// duplicates.
type Painting struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	MediaItemID uint   `json:"media_item_id" gorm:"not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Artist      string `json:"artist"`
	Year        string `json:"year"`

	MediaItem MediaItem `json:"media_item,omitempty" gorm:"foreignKey:MediaItemID"`
}

// BeforeCreate generates a UUID before creating a new painting record
func (p *Painting) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Painting model
func (Painting) TableName() string {
	return "paintings"
}

// MeetingMinute holds the OCR/translate/summarize outputs for a scanned
// meeting-minute document
type MeetingMinute struct {
	gorm.Model
	UUID           string `json:"uuid" gorm:"uniqueIndex"`
	MediaItemID    uint   `json:"media_item_id" gorm:"not null;uniqueIndex"`
	Title          string `json:"title"`
	OCRText        string `json:"ocr_text" gorm:"type:text"`
	TranslatedText string `json:"translated_text" gorm:"type:text"`
	SummarizedText string `json:"summarized_text" gorm:"type:text"`

	MediaItem MediaItem `json:"media_item,omitempty" gorm:"foreignKey:MediaItemID"`
}

// BeforeCreate generates a UUID before creating a new minute record
func (m *MeetingMinute) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the MeetingMinute model
func (MeetingMinute) TableName() string {
	return "meeting_minutes"
}

// DetectionStatus tracks the lifecycle of an element detection record
type DetectionStatus string

const (
	DetectionStatusPending  DetectionStatus = "pending"
	DetectionStatusDetected DetectionStatus = "detected"
	DetectionStatusSaved    DetectionStatus = "saved"
)

// ElementDetection stores the bounding boxes and annotated image
// produced by the element-detection endpoint for one media item
type ElementDetection struct {
	gorm.Model
	UUID        string          `json:"uuid" gorm:"uniqueIndex"`
	MediaItemID uint            `json:"media_item_id" gorm:"not null;uniqueIndex"`
	Boxes       BoundingBoxList `json:"boxes" gorm:"type:json"`
	// Object-storage key of the annotated image returned by the detector
	AnnotatedKey string          `json:"annotated_key"`
	Status       DetectionStatus `json:"status" gorm:"default:'pending'"`

	MediaItem MediaItem `json:"media_item,omitempty" gorm:"foreignKey:MediaItemID"`
}

// BeforeCreate generates a UUID before creating a new detection record
func (d *ElementDetection) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == "" {
		d.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the ElementDetection model
func (ElementDetection) TableName() string {
	return "element_detections"
}

// BoundingBox is one detected region, coordinates in pixels
type BoundingBox struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Label      string  `json:"label,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// BoundingBoxList stores detection boxes as a JSON column
type BoundingBoxList []BoundingBox

// Value implements driver.Valuer interface for BoundingBoxList
func (l BoundingBoxList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for BoundingBoxList
func (l *BoundingBoxList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("type assertion to []byte failed")
		}
	}

	return json.Unmarshal(bytes, l)
}
