package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fittrackapp/fittrack-backend/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns categories ordered by name, optionally filtered by a
// case-insensitive substring.
func (s *CategoryService) List(q string) ([]models.ActivityCategory, error) {
	query := s.db.Model(&models.ActivityCategory{})
	if q != "" {
		query = query.Where("name ILIKE ?", "%"+q+"%")
	}

	var cats []models.ActivityCategory
	if err := query.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Ensure creates any of the named categories that do not yet exist.
// Existence is checked case-insensitively so "run" never joins "Run";
// name casing of the first writer is preserved.
func (s *CategoryService) Ensure(names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var existing models.ActivityCategory
		err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("ensure category %q: %w", name, err)
		}
		if err := s.db.Create(&models.ActivityCategory{Name: name}).Error; err != nil {
			return fmt.Errorf("ensure category %q: %w", name, err)
		}
	}
	return nil
}
