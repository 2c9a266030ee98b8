package selection

import (
	"sync"

	"github.com/artefakt/archive-api/internal/models"
)

// ClassifyBatch hands full media snapshots from the gallery to the
// classification workflow. The consumer works off the snapshots
// without refetching.
type ClassifyBatch struct {
	Items   []models.MediaItem
	AlbumID uint
}

// TextBatch hands bare media item IDs to a text pipeline; the
// consumer refetches full records
type TextBatch struct {
	MediaItemIDs []uint
	AlbumID      uint
}

// StagingStore carries one-shot handoffs between surfaces. Every
// Take consumes: the second read after a single Put comes back
// empty, so a workflow never reprocesses a stale batch.
type StagingStore struct {
	mu            sync.Mutex
	classifyBatch *ClassifyBatch
	textBatches   map[Scope]*TextBatch
	flags         map[string]bool
}

// NewStagingStore creates an empty staging store
func NewStagingStore() *StagingStore {
	return &StagingStore{
		textBatches: make(map[Scope]*TextBatch),
		flags:       make(map[string]bool),
	}
}

// PutClassifyBatch stages items for the classification workflow,
// replacing any batch already staged
func (s *StagingStore) PutClassifyBatch(batch ClassifyBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classifyBatch = &batch
}

// TakeClassifyBatch returns and consumes the staged classification
// batch. The second return is false when nothing was staged.
func (s *StagingStore) TakeClassifyBatch() (ClassifyBatch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.classifyBatch == nil {
		return ClassifyBatch{}, false
	}
	batch := *s.classifyBatch
	s.classifyBatch = nil
	return batch, true
}

// PutTextBatch stages items for the text pipeline behind the scope
func (s *StagingStore) PutTextBatch(scope Scope, batch TextBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textBatches[scope] = &batch
}

// TakeTextBatch returns and consumes the staged batch for the scope
func (s *StagingStore) TakeTextBatch(scope Scope) (TextBatch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged, ok := s.textBatches[scope]
	if !ok || staged == nil {
		return TextBatch{}, false
	}
	batch := *staged
	delete(s.textBatches, scope)
	return batch, true
}

// SetFlag raises a named one-shot flag
func (s *StagingStore) SetFlag(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[name] = true
}

// TakeFlag reads and consumes a named flag
func (s *StagingStore) TakeFlag(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.flags[name]
	delete(s.flags, name)
	return set
}
