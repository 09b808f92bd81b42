package database

import (
	"errors"

	"financebook/internal/logger"
	"financebook/internal/models"

	"gorm.io/gorm"
)

// Seed creates the reserved default rows if they are absent: the "standard"
// category type and the "UNCLASSIFIED" category beneath it. The existence
// checks run inside a single transaction so repeated or concurrent startup
// never produces duplicate rows.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var standard models.CategoryType
		err := tx.Where("name = ?", models.StandardTypeName).First(&standard).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			standard = models.CategoryType{
				Name:        models.StandardTypeName,
				Description: "Default category type for basic expense/income classification",
			}
			if err := tx.Create(&standard).Error; err != nil {
				return err
			}
			logger.Get().Infow("seeded default category type", "id", standard.ID)
		} else if err != nil {
			return err
		}

		var unclassified models.Category
		err = tx.Where("name = ?", models.UnclassifiedCategoryName).First(&unclassified).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			unclassified = models.Category{
				Name:   models.UnclassifiedCategoryName,
				TypeID: standard.ID,
			}
			if err := tx.Create(&unclassified).Error; err != nil {
				return err
			}
			logger.Get().Infow("seeded fallback category", "id", unclassified.ID)
		} else if err != nil {
			return err
		}

		return nil
	})
}
