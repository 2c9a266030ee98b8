package types

import (
	"github.com/artefakt/archive-api/internal/database"
	"github.com/artefakt/archive-api/internal/services/albums"
	"github.com/artefakt/archive-api/internal/services/auth"
	"github.com/artefakt/archive-api/internal/services/detections"
	"github.com/artefakt/archive-api/internal/services/media"
	"github.com/artefakt/archive-api/internal/services/minutes"
	"github.com/artefakt/archive-api/internal/services/paintings"
	"github.com/artefakt/archive-api/internal/services/people"
	"github.com/artefakt/archive-api/internal/services/recognition"
	"github.com/artefakt/archive-api/internal/services/selection"
	"github.com/artefakt/archive-api/internal/services/workflow"
	"github.com/artefakt/archive-api/internal/storage"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                 *database.DB
	MediaService       media.Service
	AlbumService       albums.Service
	PeopleService      people.Service
	PaintingService    paintings.Service
	MinuteService      minutes.Service
	DetectionService   detections.Service
	AuthService        auth.Service
	WorkflowService    workflow.Service
	RecognitionService recognition.Service
	Storage            storage.ObjectStorage
	Selections         *selection.Registry
	Staging            *selection.StagingStore
}
