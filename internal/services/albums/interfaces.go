package albums

import (
	"context"

	"github.com/artefakt/archive-api/internal/models"
)

// Repository defines the interface for album data access
type Repository interface {
	CreateAlbum(ctx context.Context, album *models.Album) error
	GetAlbumByID(ctx context.Context, id uint) (*models.Album, error)
	ListAlbums(ctx context.Context, albumType models.AlbumType) ([]models.Album, error)
	UpdateAlbum(ctx context.Context, album *models.Album) error
	DeleteAlbum(ctx context.Context, id uint) error
}

// Service defines the interface for album business logic
type Service interface {
	CreateAlbum(ctx context.Context, album *models.Album) error
	GetAlbumByID(ctx context.Context, id uint) (*models.Album, error)
	// ListAlbums returns albums of one type, or all when albumType is empty
	ListAlbums(ctx context.Context, albumType models.AlbumType) ([]models.Album, error)
	RenameAlbum(ctx context.Context, id uint, name string) (*models.Album, error)
	DeleteAlbum(ctx context.Context, id uint) error
}
