package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// resolveClassification turns a requested set of category ids into a vetted
// category list for a payment item, preserving input order. An item carries
// at most one category per category type; a duplicate type within the batch
// fails the whole request. An empty request always resolves to the reserved
// UNCLASSIFIED category, never to a genuinely empty set.
func resolveClassification(tx *gorm.DB, categoryIDs []uint) ([]models.Category, error) {
	if len(categoryIDs) == 0 {
		var fallback models.Category
		if err := tx.Where("name = ?", models.UnclassifiedCategoryName).First(&fallback).Error; err != nil {
			// Seeding guarantees the fallback row exists.
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return []models.Category{fallback}, nil
	}

	categories := make([]models.Category, 0, len(categoryIDs))
	seenTypes := make(map[uint]bool)
	for _, id := range categoryIDs {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound,
					fmt.Sprintf("Category with id %d not found", id))
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if seenTypes[category.TypeID] {
			return nil, apperrors.ErrOneCategoryPerType
		}
		seenTypes[category.TypeID] = true
		categories = append(categories, category)
	}
	return categories, nil
}
