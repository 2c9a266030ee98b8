// Package recognition runs facial-recognition approval sessions: the
// album's unprocessed images are reviewed one at a time, suggested
// names are edited or overwritten, and approval persists the resolved
// person IDs onto the media record.
package recognition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/internal/services/media"
	"github.com/artefakt/archive-api/internal/services/people"
	"github.com/artefakt/archive-api/internal/services/vision"
	"github.com/artefakt/archive-api/internal/storage"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions
	ErrSessionNotFound = errors.New("recognition session not found")
	// ErrSessionComplete is returned when no image is under review
	ErrSessionComplete = errors.New("recognition session is complete")
	// ErrFaceIndexOutOfRange is returned for an invalid face index
	ErrFaceIndexOutOfRange = errors.New("face index out of range")
	// ErrNoUnprocessedImages is returned when the album has nothing to review
	ErrNoUnprocessedImages = errors.New("album has no unprocessed images")
)

// ApprovalResult reports what approval persisted for one image.
// Unmatched lists assigned names that resolved to no Person; under
// the default policy they are dropped, with create_missing_people
// they become new Person records instead.
type ApprovalResult struct {
	MediaItemID   uint     `json:"media_item_id"`
	RecognizedIDs []uint   `json:"recognized_ids"`
	Unmatched     []string `json:"unmatched"`
	Complete      bool     `json:"complete"`
}

// Service defines the interface for recognition approval sessions
type Service interface {
	// StartSession queues the album's unprocessed images and loads
	// faces for the first one
	StartSession(ctx context.Context, albumID uint) (*Session, error)
	GetSession(sessionID string) (*Session, error)
	// AssignName overwrites the name for one face of the current image
	AssignName(sessionID string, faceIndex int, name string) (*Session, error)
	// Approve persists the current image's assignments and advances
	Approve(ctx context.Context, sessionID string) (*ApprovalResult, error)
	// Cancel discards the current image's annotations and ends the session
	Cancel(sessionID string) error
}

// Config holds recognition policy settings
type Config struct {
	// CreateMissingPeople creates a Person for an unmatched assigned
	// name instead of dropping it
	CreateMissingPeople bool
	SessionTTL          time.Duration
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	media   media.Service
	people  people.Service
	vision  vision.Client
	objects storage.ObjectStorage
	cfg     Config

	sessions map[string]*Session
	mu       sync.RWMutex
	stop     chan struct{}
	stopOnce sync.Once
}

// NewService creates a recognition service and starts its session
// expiry sweeper
func NewService(
	mediaService media.Service,
	peopleService people.Service,
	visionClient vision.Client,
	objects storage.ObjectStorage,
	cfg Config,
) *ServiceImpl {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}
	s := &ServiceImpl{
		media:    mediaService,
		people:   peopleService,
		vision:   visionClient,
		objects:  objects,
		cfg:      cfg,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// StartSession queues the album's unprocessed images and loads the
// first image's faces
func (s *ServiceImpl) StartSession(ctx context.Context, albumID uint) (*Session, error) {
	items, err := s.media.ListMediaItems(ctx, media.ListOptions{
		AlbumID:         albumID,
		UnprocessedOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoUnprocessedImages
	}

	session := &Session{
		ID:         uuid.New().String(),
		AlbumID:    albumID,
		State:      StateLoadingFaces,
		CreatedAt:  time.Now(),
		LastActive: time.Now(),
	}
	for _, item := range items {
		session.Queue = append(session.Queue, QueueEntry{
			MediaItemID: item.ID,
			Filename:    item.Filename,
			ObjectKey:   item.ObjectKey,
		})
	}

	if err := s.loadFaces(ctx, session); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session, nil
}

// loadFaces runs detection and identification for the current image
// and fills the session's face assignments
func (s *ServiceImpl) loadFaces(ctx context.Context, session *Session) error {
	entry := session.Current()
	if entry == nil {
		session.State = StateComplete
		return nil
	}

	reader, err := s.objects.Download(ctx, entry.ObjectKey)
	if err != nil {
		return fmt.Errorf("failed to load image for media %d: %w", entry.MediaItemID, err)
	}
	data, err := io.ReadAll(reader)
	reader.Close()
	if err != nil {
		return fmt.Errorf("failed to read image for media %d: %w", entry.MediaItemID, err)
	}

	faces, err := s.vision.DetectFaces(ctx, data, entry.Filename)
	if err != nil {
		return err
	}

	session.Faces = nil
	if len(faces) > 0 {
		crops := make([][]byte, len(faces))
		for i, face := range faces {
			crops[i] = face.Crop
		}
		identifications, err := s.vision.IdentifyFaces(ctx, crops)
		if err != nil {
			return err
		}
		for i, face := range faces {
			assignment := FaceAssignment{Index: i, Box: face}
			// identifications follow crop order
			if i < len(identifications) {
				assignment.SuggestedName = identifications[i].Name
				assignment.Confidence = identifications[i].Confidence
				assignment.AssignedName = identifications[i].Name
			}
			session.Faces = append(session.Faces, assignment)
		}
	}
	session.State = StateFacesReady
	return nil
}

// GetSession returns the session by ID and records the activity.
// The touch shares the registry write lock with the sweeper.
func (s *ServiceImpl) GetSession(sessionID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.LastActive = time.Now()
	return session, nil
}

// AssignName overwrites the name for one face of the current image.
// An empty name drops the face from approval.
func (s *ServiceImpl) AssignName(sessionID string, faceIndex int, name string) (*Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.State != StateFacesReady {
		return nil, fmt.Errorf("cannot assign a name while session is %s", session.State)
	}
	if faceIndex < 0 || faceIndex >= len(session.Faces) {
		return nil, ErrFaceIndexOutOfRange
	}
	session.Faces[faceIndex].AssignedName = name
	return session, nil
}

// Approve persists the current image's assignments: every non-empty
// assigned name is resolved to a Person, the resolved IDs and the
// processed flag land on the media record, and the session advances
// to the next image.
func (s *ServiceImpl) Approve(ctx context.Context, sessionID string) (*ApprovalResult, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	entry := session.Current()
	if entry == nil || session.State == StateComplete {
		return nil, ErrSessionComplete
	}
	if session.State != StateFacesReady {
		return nil, fmt.Errorf("cannot approve while session is %s", session.State)
	}

	result := &ApprovalResult{MediaItemID: entry.MediaItemID, RecognizedIDs: []uint{}, Unmatched: []string{}}
	seen := map[uint]bool{}
	for _, face := range session.Faces {
		name := face.AssignedName
		if name == "" {
			continue
		}
		person, err := s.people.FindByName(ctx, name)
		if err != nil {
			if !errors.Is(err, people.ErrPersonNotFound) {
				return nil, err
			}
			if !s.cfg.CreateMissingPeople {
				result.Unmatched = append(result.Unmatched, name)
				continue
			}
			created := &models.Person{Name: name}
			if err := s.people.CreatePerson(ctx, created); err != nil {
				return nil, err
			}
			result.Unmatched = append(result.Unmatched, name)
			person = created
		}
		if !seen[person.ID] {
			seen[person.ID] = true
			result.RecognizedIDs = append(result.RecognizedIDs, person.ID)
		}
	}

	_, err = s.media.UpdateFields(ctx, entry.MediaItemID, map[string]interface{}{
		"face_processed":    true,
		"recognized_people": models.UintList(result.RecognizedIDs),
	})
	if err != nil {
		return nil, err
	}
	for _, id := range result.RecognizedIDs {
		if err := s.people.IncrementFaceCount(ctx, id, 1); err != nil {
			log.Printf("[ERROR] Failed to bump face count for person %d: %v", id, err)
		}
	}

	session.Approved++
	session.CurrentIndex++
	session.Faces = nil
	if session.Current() == nil {
		session.State = StateComplete
		result.Complete = true
		return result, nil
	}

	session.State = StateLoadingFaces
	if err := s.loadFaces(ctx, session); err != nil {
		// the approval itself is persisted; the next image just
		// needs a reload
		log.Printf("[ERROR] Failed to load faces for next image: %v", err)
		return result, nil
	}
	return result, nil
}

// Cancel discards the current image's annotations and ends the session
func (s *ServiceImpl) Cancel(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Close stops the session expiry sweeper
func (s *ServiceImpl) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *ServiceImpl) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-s.cfg.SessionTTL)
			s.mu.Lock()
			for id, session := range s.sessions {
				if session.LastActive.Before(cutoff) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}
