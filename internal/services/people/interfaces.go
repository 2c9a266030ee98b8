package people

import (
	"context"

	"github.com/artefakt/archive-api/internal/models"
)

// Repository defines the interface for person data access
type Repository interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPersonByID(ctx context.Context, id uint) (*models.Person, error)
	// FindByName does an exact-match lookup, the way approval resolves
	// an assigned face name
	FindByName(ctx context.Context, name string) (*models.Person, error)
	ListPeople(ctx context.Context, search string) ([]models.Person, error)
	IncrementFaceCount(ctx context.Context, id uint, delta int) error
	DeletePerson(ctx context.Context, id uint) error
}

// Service defines the interface for person business logic
type Service interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPersonByID(ctx context.Context, id uint) (*models.Person, error)
	FindByName(ctx context.Context, name string) (*models.Person, error)
	ListPeople(ctx context.Context, search string) ([]models.Person, error)
	IncrementFaceCount(ctx context.Context, id uint, delta int) error
	DeletePerson(ctx context.Context, id uint) error
}
