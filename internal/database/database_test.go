package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artefakt/archive-api/internal/models"
)

func TestInitialize_CreatesDirectoryAndFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "archive.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate(&models.Album{}, &models.MediaItem{}))

	assert.True(t, db.Migrator().HasTable(&models.Album{}))
	assert.True(t, db.Migrator().HasTable(&models.MediaItem{}))
}

func TestHealthCheck_UninitializedDB(t *testing.T) {
	var db *DB
	assert.Error(t, db.HealthCheck())
}
