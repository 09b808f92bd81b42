package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// categoryTypeService handles category type business logic.
type categoryTypeService struct {
	db *gorm.DB
}

// NewCategoryTypeService creates a new CategoryTypeServicer.
func NewCategoryTypeService(db *gorm.DB) CategoryTypeServicer {
	return &categoryTypeService{db: db}
}

// CreateCategoryType creates a new classification dimension.
func (s *categoryTypeService) CreateCategoryType(name, description string) (*models.CategoryType, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type name is required")
	}

	categoryType := &models.CategoryType{
		Name:        name,
		Description: description,
	}
	if err := s.db.Create(categoryType).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categoryType, nil
}

// ListCategoryTypes retrieves all category types.
func (s *categoryTypeService) ListCategoryTypes() ([]models.CategoryType, error) {
	var types []models.CategoryType
	if err := s.db.Find(&types).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return types, nil
}

// GetCategoryTypeByID retrieves a category type by ID.
func (s *categoryTypeService) GetCategoryTypeByID(id uint) (*models.CategoryType, error) {
	var categoryType models.CategoryType
	if err := s.db.First(&categoryType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &categoryType, nil
}
