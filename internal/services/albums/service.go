package albums

import (
	"context"
	"fmt"

	"github.com/artefakt/archive-api/internal/models"
)

var validAlbumTypes = map[models.AlbumType]bool{
	models.AlbumTypeGeneral:  true,
	models.AlbumTypePainting: true,
	models.AlbumTypeMinute:   true,
	models.AlbumTypeEvents:   true,
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new album service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

func (s *ServiceImpl) CreateAlbum(ctx context.Context, album *models.Album) error {
	if album.Name == "" {
		return fmt.Errorf("Name is required")
	}
	if album.Type == "" {
		album.Type = models.AlbumTypeGeneral
	}
	if !validAlbumTypes[album.Type] {
		return fmt.Errorf("Invalid album type: %s", album.Type)
	}
	return s.repository.CreateAlbum(ctx, album)
}

func (s *ServiceImpl) GetAlbumByID(ctx context.Context, id uint) (*models.Album, error) {
	return s.repository.GetAlbumByID(ctx, id)
}

func (s *ServiceImpl) ListAlbums(ctx context.Context, albumType models.AlbumType) ([]models.Album, error) {
	if albumType != "" && !validAlbumTypes[albumType] {
		return nil, fmt.Errorf("Invalid album type: %s", albumType)
	}
	return s.repository.ListAlbums(ctx, albumType)
}

func (s *ServiceImpl) RenameAlbum(ctx context.Context, id uint, name string) (*models.Album, error) {
	if name == "" {
		return nil, fmt.Errorf("Name is required")
	}

	album, err := s.repository.GetAlbumByID(ctx, id)
	if err != nil {
		return nil, err
	}

	album.Name = name
	if err := s.repository.UpdateAlbum(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *ServiceImpl) DeleteAlbum(ctx context.Context, id uint) error {
	return s.repository.DeleteAlbum(ctx, id)
}
