package people

import (
	"context"
	"fmt"
	"strings"

	"github.com/artefakt/archive-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new person service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

func (s *ServiceImpl) CreatePerson(ctx context.Context, person *models.Person) error {
	person.Name = strings.TrimSpace(person.Name)
	if person.Name == "" {
		return fmt.Errorf("Name is required")
	}
	return s.repository.CreatePerson(ctx, person)
}

func (s *ServiceImpl) GetPersonByID(ctx context.Context, id uint) (*models.Person, error) {
	return s.repository.GetPersonByID(ctx, id)
}

func (s *ServiceImpl) FindByName(ctx context.Context, name string) (*models.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPersonNotFound
	}
	return s.repository.FindByName(ctx, name)
}

func (s *ServiceImpl) ListPeople(ctx context.Context, search string) ([]models.Person, error) {
	return s.repository.ListPeople(ctx, search)
}

func (s *ServiceImpl) IncrementFaceCount(ctx context.Context, id uint, delta int) error {
	return s.repository.IncrementFaceCount(ctx, id, delta)
}

func (s *ServiceImpl) DeletePerson(ctx context.Context, id uint) error {
	return s.repository.DeletePerson(ctx, id)
}
