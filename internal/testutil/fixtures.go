package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"financebook/internal/database"
	"financebook/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// SeedDefaults seeds the reserved category type and category, then
// returns the UNCLASSIFIED category.
func SeedDefaults(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	if err := database.Seed(db); err != nil {
		t.Fatalf("failed to seed default data: %v", err)
	}

	var unclassified models.Category
	if err := db.Where("name = ?", models.UnclassifiedCategoryName).First(&unclassified).Error; err != nil {
		t.Fatalf("failed to load seeded %s category: %v", models.UnclassifiedCategoryName, err)
	}
	return &unclassified
}

// CreateTestCategoryType creates a category type with a unique name.
func CreateTestCategoryType(t *testing.T, db *gorm.DB) *models.CategoryType {
	t.Helper()

	categoryType := &models.CategoryType{
		Name:        fmt.Sprintf("Test Type %d", nextID()),
		Description: "test category type",
	}
	if err := db.Create(categoryType).Error; err != nil {
		t.Fatalf("failed to create test category type: %v", err)
	}
	return categoryType
}

// CreateTestCategory creates a category of the given type, optionally
// parented under another category.
func CreateTestCategory(t *testing.T, db *gorm.DB, typeID uint, parentID *uint) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     fmt.Sprintf("Test Category %d", nextID()),
		TypeID:   typeID,
		ParentID: parentID,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestRecipient creates a recipient with a unique name.
func CreateTestRecipient(t *testing.T, db *gorm.DB) *models.Recipient {
	t.Helper()

	recipient := &models.Recipient{
		Name:    fmt.Sprintf("Test Recipient %d", nextID()),
		Address: "1 Test Street",
	}
	if err := db.Create(recipient).Error; err != nil {
		t.Fatalf("failed to create test recipient: %v", err)
	}
	return recipient
}

// CreateTestPaymentItem creates a payment item with the given amount and
// no classification links.
func CreateTestPaymentItem(t *testing.T, db *gorm.DB, amount float64) *models.PaymentItem {
	t.Helper()

	item := &models.PaymentItem{
		Amount:      amount,
		Date:        time.Now(),
		Description: fmt.Sprintf("Test Payment %d", nextID()),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test payment item: %v", err)
	}
	return item
}

// LinkItemToCategory creates a classification link row directly.
func LinkItemToCategory(t *testing.T, db *gorm.DB, itemID, categoryID uint) {
	t.Helper()

	link := &models.PaymentItemCategoryLink{
		PaymentItemID: itemID,
		CategoryID:    categoryID,
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to link payment item %d to category %d: %v", itemID, categoryID, err)
	}
}
