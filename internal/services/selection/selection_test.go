package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artefakt/archive-api/internal/models"
)

func TestStore_PreservesOrderAndDuplicates(t *testing.T) {
	store := NewStore()
	store.Replace([]uint{5, 2, 9, 2})

	assert.Equal(t, []uint{5, 2, 9, 2}, store.Get())
	assert.Equal(t, 4, store.Len())
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Replace([]uint{1, 2, 3})

	got := store.Get()
	got[0] = 99

	assert.Equal(t, []uint{1, 2, 3}, store.Get())
}

func TestStore_AddRemoveClear(t *testing.T) {
	store := NewStore()
	store.Add(4)
	store.Add(7)
	store.Add(4)

	store.Remove(4)
	assert.Equal(t, []uint{7, 4}, store.Get())

	store.Remove(999) // no-op
	assert.Equal(t, []uint{7, 4}, store.Get())

	store.Clear()
	assert.Empty(t, store.Get())
	assert.Equal(t, 0, store.Len())
}

func TestRegistry_ScopesAreIsolated(t *testing.T) {
	registry := DefaultRegistry()

	registry.MustStore(ScopeGallery).Replace([]uint{1, 2})
	registry.MustStore(ScopeClassify).Replace([]uint{3})

	assert.Equal(t, []uint{1, 2}, registry.MustStore(ScopeGallery).Get())
	assert.Equal(t, []uint{3}, registry.MustStore(ScopeClassify).Get())

	registry.MustStore(ScopeGallery).Clear()
	assert.Empty(t, registry.MustStore(ScopeGallery).Get())
	assert.Equal(t, []uint{3}, registry.MustStore(ScopeClassify).Get())
}

func TestRegistry_MustStorePanicsOnUnknownScope(t *testing.T) {
	registry := NewRegistry(ScopeGallery)

	assert.Panics(t, func() {
		registry.MustStore(Scope("nonexistent"))
	})
}

func TestRegistry_ProvisionIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	registry.Provision(ScopeRecognition)
	registry.MustStore(ScopeRecognition).Replace([]uint{8})

	registry.Provision(ScopeRecognition)
	assert.Equal(t, []uint{8}, registry.MustStore(ScopeRecognition).Get())
}

func TestStagingStore_TakeConsumes(t *testing.T) {
	staging := NewStagingStore()

	staging.PutClassifyBatch(ClassifyBatch{
		Items: []models.MediaItem{
			{Filename: "one.jpg"},
			{Filename: "two.jpg"},
		},
		AlbumID: 5,
	})

	batch, ok := staging.TakeClassifyBatch()
	assert.True(t, ok)
	assert.Len(t, batch.Items, 2)
	assert.Equal(t, "one.jpg", batch.Items[0].Filename)
	assert.Equal(t, uint(5), batch.AlbumID)

	_, ok = staging.TakeClassifyBatch()
	assert.False(t, ok)
}

func TestStagingStore_TextBatchesScopedAndConsumed(t *testing.T) {
	staging := NewStagingStore()

	staging.PutTextBatch(ScopeMinutes, TextBatch{MediaItemIDs: []uint{10}})
	staging.PutTextBatch(ScopePaintings, TextBatch{MediaItemIDs: []uint{20}})

	batch, ok := staging.TakeTextBatch(ScopeMinutes)
	assert.True(t, ok)
	assert.Equal(t, []uint{10}, batch.MediaItemIDs)

	_, ok = staging.TakeTextBatch(ScopeMinutes)
	assert.False(t, ok)

	batch, ok = staging.TakeTextBatch(ScopePaintings)
	assert.True(t, ok)
	assert.Equal(t, []uint{20}, batch.MediaItemIDs)
}

func TestStagingStore_FlagsAreOneShot(t *testing.T) {
	staging := NewStagingStore()

	assert.False(t, staging.TakeFlag("refresh"))

	staging.SetFlag("refresh")
	assert.True(t, staging.TakeFlag("refresh"))
	assert.False(t, staging.TakeFlag("refresh"))
}
