package people

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artefakt/archive-api/internal/models"
	"gorm.io/gorm"
)

// ErrPersonNotFound is returned when a person record does not exist
var ErrPersonNotFound = errors.New("person not found")

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new person repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) CreatePerson(ctx context.Context, person *models.Person) error {
	if err := r.db.WithContext(ctx).Create(person).Error; err != nil {
		return fmt.Errorf("creating person: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetPersonByID(ctx context.Context, id uint) (*models.Person, error) {
	var person models.Person
	if err := r.db.WithContext(ctx).First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("getting person: %w", err)
	}
	return &person, nil
}

func (r *RepositoryImpl) FindByName(ctx context.Context, name string) (*models.Person, error) {
	var person models.Person
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("finding person by name: %w", err)
	}
	return &person, nil
}

func (r *RepositoryImpl) ListPeople(ctx context.Context, search string) ([]models.Person, error) {
	query := r.db.WithContext(ctx).Model(&models.Person{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var persons []models.Person
	if err := query.Order("name ASC").Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	return persons, nil
}

func (r *RepositoryImpl) IncrementFaceCount(ctx context.Context, id uint, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Person{}).
		Where("id = ?", id).
		Update("face_count", gorm.Expr("face_count + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("updating face count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeletePerson(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Person{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting person: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}
	return nil
}
