package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorage_RoundTrip(t *testing.T) {
	store, err := NewFilesystemStorage(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)
	ctx := context.Background()

	content := "scan bytes"
	err = store.Upload(ctx, "albums/3/scan.jpg", strings.NewReader(content), int64(len(content)), "image/jpeg")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "albums/3/scan.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Download(ctx, "albums/3/scan.jpg")
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	assert.Equal(t, "http://localhost:8080/media/albums/3/scan.jpg", store.GetURL("albums/3/scan.jpg"))

	require.NoError(t, store.Delete(ctx, "albums/3/scan.jpg"))
	exists, err = store.Exists(ctx, "albums/3/scan.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFilesystemStorage_DeleteMissingIsNoError(t *testing.T) {
	store, err := NewFilesystemStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never/uploaded.png"))
}

func TestFilesystemStorage_RejectsTraversal(t *testing.T) {
	store, err := NewFilesystemStorage(t.TempDir(), "")
	require.NoError(t, err)

	_, err = store.Download(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}
