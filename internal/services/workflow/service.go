// Package workflow drives the multi-stage AI pipelines: a session is
// created over a fixed list of media items and each item is stepped
// through its pipeline's stages, with the user editing results
// between stages and saving per item or all at once.
package workflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/internal/prompts"
	"github.com/artefakt/archive-api/internal/services/detections"
	"github.com/artefakt/archive-api/internal/services/genai"
	"github.com/artefakt/archive-api/internal/services/media"
	"github.com/artefakt/archive-api/internal/services/minutes"
	"github.com/artefakt/archive-api/internal/services/paintings"
	"github.com/artefakt/archive-api/internal/services/selection"
	"github.com/artefakt/archive-api/internal/services/vision"
	"github.com/artefakt/archive-api/internal/storage"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions
	ErrSessionNotFound = errors.New("workflow session not found")
	// ErrItemNotFound is returned when a media item isn't part of the session
	ErrItemNotFound = errors.New("media item not in session")
	// ErrStageRunning is returned when an item already has a stage in flight
	ErrStageRunning = errors.New("a stage is already running for this item")
	// ErrNothingSelected is returned when no items were selected or staged
	ErrNothingSelected = errors.New("no media items selected for workflow")
)

// FailedSave is one item that could not be persisted during save-all
type FailedSave struct {
	MediaItemID uint   `json:"media_item_id"`
	Error       string `json:"error"`
}

// SaveReport summarizes a save-all run. Save-all is not atomic; each
// item succeeds or fails on its own.
type SaveReport struct {
	Saved  []uint       `json:"saved"`
	Failed []FailedSave `json:"failed"`
}

// Service defines the interface for workflow session management
type Service interface {
	// CreateSession starts a session of the given kind. With an empty
	// ID list the session pulls from the kind's handoff channel
	// (staging batch or selection scope).
	CreateSession(ctx context.Context, kind Kind, mediaItemIDs []uint) (*Session, error)
	GetSession(sessionID string) (*Session, error)
	// RunStage executes one pipeline stage for one item. The stage is
	// rejected while its predecessor's output field is empty.
	RunStage(ctx context.Context, sessionID string, mediaItemID uint, stage string) (*Item, error)
	// UpdateField overwrites an editable result field before saving
	UpdateField(sessionID string, mediaItemID uint, field, value string) (*Item, error)
	// ProcessAll runs the first stage for every item sequentially
	ProcessAll(ctx context.Context, sessionID string) ([]*Item, error)
	SaveItem(ctx context.Context, sessionID string, mediaItemID uint) (*Item, error)
	SaveAll(ctx context.Context, sessionID string) (*SaveReport, error)
	// CancelSession drops the session and clears its selection scope
	CancelSession(sessionID string) error
}

// Config holds workflow tuning
type Config struct {
	DefaultClassifyLabel string
	ProcessAllDelay      time.Duration
	SessionTTL           time.Duration
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	sessions   *SessionStore
	media      media.Service
	paintings  paintings.Service
	minutes    minutes.Service
	detections detections.Service
	ai         genai.Client
	vision     vision.Client
	objects    storage.ObjectStorage
	registry   *selection.Registry
	staging    *selection.StagingStore
	cfg        Config
}

// NewService creates a workflow service
func NewService(
	mediaService media.Service,
	paintingsService paintings.Service,
	minutesService minutes.Service,
	detectionsService detections.Service,
	aiClient genai.Client,
	visionClient vision.Client,
	objects storage.ObjectStorage,
	registry *selection.Registry,
	staging *selection.StagingStore,
	cfg Config,
) *ServiceImpl {
	if cfg.DefaultClassifyLabel == "" {
		cfg.DefaultClassifyLabel = "diplomatic"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}
	return &ServiceImpl{
		sessions:   NewSessionStore(cfg.SessionTTL),
		media:      mediaService,
		paintings:  paintingsService,
		minutes:    minutesService,
		detections: detectionsService,
		ai:         aiClient,
		vision:     visionClient,
		objects:    objects,
		registry:   registry,
		staging:    staging,
		cfg:        cfg,
	}
}

// scopeForKind maps a pipeline to its selection scope
func scopeForKind(kind Kind) selection.Scope {
	switch kind {
	case KindClassify:
		return selection.ScopeClassify
	case KindMinutes:
		return selection.ScopeMinutes
	case KindPaintingDesc:
		return selection.ScopePaintings
	case KindElementDetect:
		return selection.ScopeElements
	}
	return selection.ScopeGallery
}

// CreateSession starts a session over the selected media items
func (s *ServiceImpl) CreateSession(ctx context.Context, kind Kind, mediaItemIDs []uint) (*Session, error) {
	if _, ok := pipelineStages[kind]; !ok {
		return nil, fmt.Errorf("unknown workflow kind: %s", kind)
	}

	var records []models.MediaItem
	var albumID uint

	switch {
	case len(mediaItemIDs) > 0:
		fetched, err := s.media.GetMediaItemsByIDs(ctx, mediaItemIDs)
		if err != nil {
			return nil, err
		}
		records = fetched
	case kind == KindClassify:
		// classify consumes full snapshots from the staging handoff
		batch, ok := s.staging.TakeClassifyBatch()
		if !ok {
			return nil, ErrNothingSelected
		}
		records = batch.Items
		albumID = batch.AlbumID
	case kind == KindMinutes:
		// the text pipeline hands over bare IDs and refetches
		batch, ok := s.staging.TakeTextBatch(selection.ScopeMinutes)
		if !ok {
			return nil, ErrNothingSelected
		}
		fetched, err := s.media.GetMediaItemsByIDs(ctx, batch.MediaItemIDs)
		if err != nil {
			return nil, err
		}
		records = fetched
		albumID = batch.AlbumID
	default:
		ids := s.registry.MustStore(scopeForKind(kind)).Get()
		if len(ids) == 0 {
			return nil, ErrNothingSelected
		}
		fetched, err := s.media.GetMediaItemsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		records = fetched
	}

	if len(records) == 0 {
		return nil, ErrNothingSelected
	}

	session := &Session{
		ID:         uuid.New().String(),
		Kind:       kind,
		AlbumID:    albumID,
		CreatedAt:  time.Now(),
		LastActive: time.Now(),
	}
	for i := range records {
		session.Items = append(session.Items, s.newItem(ctx, kind, &records[i]))
	}

	s.sessions.Set(session.ID, session)
	return session, nil
}

// newItem builds the initial per-item state, preloading an existing
// annotation record where the pipeline has one
func (s *ServiceImpl) newItem(ctx context.Context, kind Kind, record *models.MediaItem) *Item {
	item := &Item{
		MediaItemID: record.ID,
		Filename:    record.Filename,
		ObjectKey:   record.ObjectKey,
		MimeType:    record.MimeType,
		State:       StateUnstaged,
		Fields:      map[string]string{},
	}

	switch kind {
	case KindClassify:
		label := s.cfg.DefaultClassifyLabel
		if record.Class != "" {
			label = record.Class
		}
		item.Fields["class"] = label
		if caption, ok := classifyCaptions[label]; ok {
			item.Fields["ai_caption"] = caption
		}
	case KindMinutes:
		item.Fields["title"] = record.Filename
		if minute, err := s.minutes.GetMinuteByMediaItemID(ctx, record.ID); err == nil {
			item.Fields["title"] = minute.Title
			item.Fields["ocr_text"] = minute.OCRText
			item.Fields["translated_text"] = minute.TranslatedText
			item.Fields["summarized_text"] = minute.SummarizedText
			if minute.OCRText != "" {
				item.State = StateReady
			}
		}
	case KindPaintingDesc:
		if painting, err := s.paintings.GetPaintingByMediaItemID(ctx, record.ID); err == nil {
			item.Fields["description"] = painting.Description
			item.Fields["artist"] = painting.Artist
			item.Fields["year"] = painting.Year
			if painting.Description != "" {
				item.State = StateReady
			}
		}
	case KindElementDetect:
		if detection, err := s.detections.GetDetectionByMediaItemID(ctx, record.ID); err == nil {
			item.Elements = detection.Boxes
			item.AnnotatedKey = detection.AnnotatedKey
			item.Fields["elements"] = strconv.Itoa(len(detection.Boxes))
			if len(detection.Boxes) > 0 {
				item.State = StateReady
			}
		}
	}
	return item
}

// GetSession returns the session by ID
func (s *ServiceImpl) GetSession(sessionID string) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.sessions.Touch(sessionID)
	return session, nil
}

// RunStage executes one pipeline stage for one item
func (s *ServiceImpl) RunStage(ctx context.Context, sessionID string, mediaItemID uint, stage string) (*Item, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.sessions.Touch(sessionID)

	var stageDef *StageDef
	for i := range pipelineStages[session.Kind] {
		if pipelineStages[session.Kind][i].Name == stage {
			stageDef = &pipelineStages[session.Kind][i]
			break
		}
	}
	if stageDef == nil {
		return nil, fmt.Errorf("unknown stage %q for %s workflow", stage, session.Kind)
	}

	// claim the item
	session.mu.Lock()
	item := session.item(mediaItemID)
	if item == nil {
		session.mu.Unlock()
		return nil, ErrItemNotFound
	}
	if item.State == StateRunning {
		session.mu.Unlock()
		return nil, ErrStageRunning
	}
	if stageDef.Requires != "" && strings.TrimSpace(item.Fields[stageDef.Requires]) == "" {
		session.mu.Unlock()
		return nil, fmt.Errorf("stage %q requires %s", stage, stageDef.Requires)
	}
	prevState := item.State
	item.State = StateRunning
	item.LastError = ""
	session.mu.Unlock()

	// the external call runs unlocked so other items can progress
	err := s.executeStage(ctx, session, item, stageDef)

	session.mu.Lock()
	defer session.mu.Unlock()
	if err != nil {
		// revert, keeping whatever field contents were there before
		item.State = prevState
		item.LastError = err.Error()
		log.Printf("[ERROR] Workflow %s stage %s failed for media %d: %v", session.Kind, stage, mediaItemID, err)
		return nil, err
	}
	item.State = StateReady
	return item, nil
}

// executeStage performs the stage's external call and writes its
// output field on success
func (s *ServiceImpl) executeStage(ctx context.Context, session *Session, item *Item, stageDef *StageDef) error {
	switch stageDef.Name {
	case "classify":
		data, err := s.downloadImage(ctx, item)
		if err != nil {
			return err
		}
		raw, err := s.ai.DescribeImage(ctx, prompts.ClassifyPrompt, data, item.MimeType)
		if err != nil {
			return err
		}
		label := strings.ToLower(strings.TrimSpace(raw))
		caption, known := classifyCaptions[label]
		session.mu.Lock()
		if known {
			item.Fields["class"] = label
			item.Fields["ai_caption"] = caption
		}
		session.mu.Unlock()
		return nil
	case "ocr":
		data, err := s.downloadImage(ctx, item)
		if err != nil {
			return err
		}
		text, err := s.ai.DescribeImage(ctx, prompts.OCRPrompt, data, item.MimeType)
		if err != nil {
			return err
		}
		session.mu.Lock()
		item.Fields["ocr_text"] = text
		session.mu.Unlock()
		return nil
	case "translate":
		session.mu.Lock()
		source := item.Fields["ocr_text"]
		session.mu.Unlock()
		text, err := s.ai.GenerateText(ctx, fmt.Sprintf(prompts.TranslatePromptFormat, source))
		if err != nil {
			return err
		}
		session.mu.Lock()
		item.Fields["translated_text"] = text
		session.mu.Unlock()
		return nil
	case "summarize":
		session.mu.Lock()
		source := item.Fields["translated_text"]
		session.mu.Unlock()
		text, err := s.ai.GenerateText(ctx, fmt.Sprintf(prompts.SummarizePromptFormat, source))
		if err != nil {
			return err
		}
		session.mu.Lock()
		item.Fields["summarized_text"] = text
		session.mu.Unlock()
		return nil
	case "describe":
		data, err := s.downloadImage(ctx, item)
		if err != nil {
			return err
		}
		text, err := s.ai.DescribeImage(ctx, prompts.PaintingDescriptionPrompt, data, item.MimeType)
		if err != nil {
			return err
		}
		session.mu.Lock()
		item.Fields["description"] = text
		session.mu.Unlock()
		return nil
	case "detect":
		data, err := s.downloadImage(ctx, item)
		if err != nil {
			return err
		}
		result, err := s.vision.DetectElements(ctx, data, item.Filename)
		if err != nil {
			return err
		}
		boxes := make(models.BoundingBoxList, 0, len(result.Elements))
		for _, el := range result.Elements {
			boxes = append(boxes, models.BoundingBox{
				X:          float64(el.X),
				Y:          float64(el.Y),
				Width:      float64(el.Width),
				Height:     float64(el.Height),
				Label:      el.Label,
				Confidence: el.Confidence,
			})
		}

		annotatedKey := ""
		if len(result.AnnotatedImage) > 0 {
			annotatedKey = fmt.Sprintf("annotations/%d_%s", item.MediaItemID, item.Filename)
			err := s.objects.Upload(ctx, annotatedKey,
				bytes.NewReader(result.AnnotatedImage),
				int64(len(result.AnnotatedImage)), item.MimeType)
			if err != nil {
				return err
			}
		}

		// persist as "detected" now; save confirms it later
		if _, err := s.detections.RecordDetection(ctx, item.MediaItemID, boxes, annotatedKey); err != nil {
			return err
		}

		session.mu.Lock()
		item.Elements = boxes
		item.AnnotatedKey = annotatedKey
		item.Fields["elements"] = strconv.Itoa(len(boxes))
		session.mu.Unlock()
		return nil
	}
	return fmt.Errorf("stage %q has no executor", stageDef.Name)
}

// downloadImage fetches the item's image bytes from object storage
func (s *ServiceImpl) downloadImage(ctx context.Context, item *Item) ([]byte, error) {
	reader, err := s.objects.Download(ctx, item.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load image for media %d: %w", item.MediaItemID, err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image for media %d: %w", item.MediaItemID, err)
	}
	return data, nil
}

// UpdateField overwrites an editable result field. For the classify
// pipeline, setting "class" also rewrites the caption to the label's
// fixed text.
func (s *ServiceImpl) UpdateField(sessionID string, mediaItemID uint, field, value string) (*Item, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.sessions.Touch(sessionID)

	if !editableFields[session.Kind][field] {
		return nil, fmt.Errorf("field %q is not editable in the %s workflow", field, session.Kind)
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	item := session.item(mediaItemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.State == StateRunning {
		return nil, ErrStageRunning
	}

	if session.Kind == KindClassify && field == "class" {
		caption, known := classifyCaptions[value]
		if !known {
			return nil, fmt.Errorf("unknown classification label: %s", value)
		}
		item.Fields["class"] = value
		item.Fields["ai_caption"] = caption
	} else {
		item.Fields[field] = value
	}

	if item.State == StateUnstaged || item.State == StateSaved {
		item.State = StateReady
	}
	return item, nil
}

// ProcessAll runs the first stage for every item, one after another,
// pausing between items. Failures are recorded per item and do not
// stop the run.
func (s *ServiceImpl) ProcessAll(ctx context.Context, sessionID string) ([]*Item, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	first := pipelineStages[session.Kind][0]

	for i, item := range session.Items {
		if i > 0 && s.cfg.ProcessAllDelay > 0 {
			select {
			case <-time.After(s.cfg.ProcessAllDelay):
			case <-ctx.Done():
				return session.Items, ctx.Err()
			}
		}
		if _, err := s.RunStage(ctx, sessionID, item.MediaItemID, first.Name); err != nil {
			// already recorded on the item
			continue
		}
	}
	return session.Items, nil
}

// SaveItem persists one item's results. Saving is rejected until the
// pipeline's first output field holds content.
func (s *ServiceImpl) SaveItem(ctx context.Context, sessionID string, mediaItemID uint) (*Item, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.sessions.Touch(sessionID)

	session.mu.Lock()
	item := session.item(mediaItemID)
	if item == nil {
		session.mu.Unlock()
		return nil, ErrItemNotFound
	}
	if item.State == StateRunning {
		session.mu.Unlock()
		return nil, ErrStageRunning
	}
	fields := make(map[string]string, len(item.Fields))
	for k, v := range item.Fields {
		fields[k] = v
	}
	elements := item.Elements
	session.mu.Unlock()

	var err error
	switch session.Kind {
	case KindClassify:
		// one partial update; other workflows' fields stay untouched
		_, err = s.media.UpdateFields(ctx, mediaItemID, map[string]interface{}{
			"class":      fields["class"],
			"ai_caption": fields["ai_caption"],
		})
	case KindMinutes:
		if strings.TrimSpace(fields["ocr_text"]) == "" {
			return nil, errors.New("Cannot save before OCR text exists")
		}
		_, err = s.minutes.SaveMinute(ctx, mediaItemID, minutes.Fields{
			Title:          fields["title"],
			OCRText:        fields["ocr_text"],
			TranslatedText: fields["translated_text"],
			SummarizedText: fields["summarized_text"],
		})
		if err == nil {
			_, err = s.media.UpdateFields(ctx, mediaItemID, map[string]interface{}{
				"ocr_text":        fields["ocr_text"],
				"translated_text": fields["translated_text"],
				"summarized_text": fields["summarized_text"],
			})
		}
	case KindPaintingDesc:
		_, err = s.paintings.SavePainting(ctx, mediaItemID, paintings.Fields{
			Description: fields["description"],
			Artist:      fields["artist"],
			Year:        fields["year"],
		})
	case KindElementDetect:
		if len(elements) == 0 {
			return nil, errors.New("Cannot save before detection has run")
		}
		_, err = s.detections.ConfirmDetection(ctx, mediaItemID)
	}
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	item.State = StateSaved
	return item, nil
}

// SaveAll persists every item, reporting per-item results
func (s *ServiceImpl) SaveAll(ctx context.Context, sessionID string) (*SaveReport, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	report := &SaveReport{Saved: []uint{}, Failed: []FailedSave{}}
	for _, item := range session.Items {
		if _, err := s.SaveItem(ctx, sessionID, item.MediaItemID); err != nil {
			report.Failed = append(report.Failed, FailedSave{
				MediaItemID: item.MediaItemID,
				Error:       err.Error(),
			})
			continue
		}
		report.Saved = append(report.Saved, item.MediaItemID)
	}

	if len(report.Failed) == 0 {
		// gallery shows a one-shot toast on its next load
		s.staging.SetFlag(string(session.Kind) + "_saved")
	}
	return report, nil
}

// CancelSession drops the session and clears its selection scope
func (s *ServiceImpl) CancelSession(sessionID string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	s.registry.MustStore(scopeForKind(session.Kind)).Clear()
	s.sessions.Delete(sessionID)
	return nil
}

// Close stops the session expiry sweeper
func (s *ServiceImpl) Close() {
	s.sessions.Stop()
}
