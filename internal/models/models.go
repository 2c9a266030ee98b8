package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// AlbumType determines which gallery an album (and its media) surfaces in
type AlbumType string

const (
	AlbumTypeGeneral  AlbumType = "general"
	AlbumTypePainting AlbumType = "painting"
	AlbumTypeMinute   AlbumType = "minute"
	AlbumTypeEvents   AlbumType = "events"
)

// Album represents a named grouping of media items
type Album struct {
	gorm.Model
	Name  string      `json:"name" gorm:"not null"`
	Type  AlbumType   `json:"type" gorm:"not null;default:'general';index"`
	Media []MediaItem `json:"media,omitempty" gorm:"foreignKey:AlbumID"`
}

// TableName returns the table name for the Album model
func (Album) TableName() string {
	return "albums"
}

// MediaItem represents an uploaded photograph or document.
//
// Annotation columns are written by different workflows at different
// times, so updates against this table must always be partial (field
// maps), never whole-struct saves.
type MediaItem struct {
	gorm.Model
	Filename  string `json:"filename" gorm:"not null;index"`
	ObjectKey string `json:"object_key" gorm:"not null"` // key into object storage
	MimeType  string `json:"mime_type"`
	AlbumID   uint   `json:"album_id" gorm:"not null;index"`

	// Per-workflow annotation fields
	Class            string   `json:"class"`
	AICaption        string   `json:"ai_caption" gorm:"type:text"`
	OCRText          string   `json:"ocr_text" gorm:"type:text"`
	TranslatedText   string   `json:"translated_text" gorm:"type:text"`
	SummarizedText   string   `json:"summarized_text" gorm:"type:text"`
	FaceProcessed    bool     `json:"face_processed" gorm:"default:false;index"`
	RecognizedPeople UintList `json:"recognized_people" gorm:"type:json"`

	Album Album `json:"-" gorm:"foreignKey:AlbumID"`
}

// TableName returns the table name for the MediaItem model
func (MediaItem) TableName() string {
	return "media"
}

// UintList stores an ordered list of record IDs as a JSON column
type UintList []uint

// Value implements driver.Valuer interface for UintList
func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for UintList
func (l *UintList) Scan(value interface{}) error {
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

// Person represents a known individual that detected faces can resolve to
type Person struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;index"`
	FaceCount int    `json:"face_count" gorm:"default:0"`
}

// TableName returns the table name for the Person model
func (Person) TableName() string {
	return "people"
}

// User represents a staff account
type User struct {
	gorm.Model
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Name         string `json:"name"`
	PasswordHash string `json:"-" gorm:"not null"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
