package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpost/inkpost/models"
)

// CategoryStore owns category records. Names are unique; there is no update
// or delete operation.
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore creates a CategoryStore backed by db.
func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Create inserts a new category. The name is required and must be unused; the
// description is optional and limited to 100 characters.
func (s *CategoryStore) Create(name, description string) (*models.Category, error) {
	if name == "" {
		return nil, ErrMissingCategoryName
	}
	if len([]rune(description)) > 100 {
		return nil, ErrDescriptionTooLong
	}

	var existing models.Category
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrCategoryTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{Name: name, Description: description}
	if err := s.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryTaken
		}
		return nil, err
	}

	return &category, nil
}

// List returns all categories.
func (s *CategoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
