package services

import (
	"testing"
	"time"

	"financebook/internal/models"
	"financebook/internal/testutil"

	"gorm.io/gorm"
)

func countLinks(t *testing.T, db *gorm.DB, itemID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.PaymentItemCategoryLink{}).
		Where("payment_item_id = ?", itemID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count links: %v", err)
	}
	return count
}

func TestCreatePaymentItem(t *testing.T) {
	t.Run("defaults_to_unclassified", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		unclassified := testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		item, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount: -12.5,
			Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		testutil.AssertNoError(t, err)

		if len(item.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(item.Categories))
		}
		if item.Categories[0].ID != unclassified.ID {
			t.Errorf("expected UNCLASSIFIED category %d, got %d", unclassified.ID, item.Categories[0].ID)
		}
	})

	t.Run("with_categories_and_recipient", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		type1 := testutil.CreateTestCategoryType(t, db)
		type2 := testutil.CreateTestCategoryType(t, db)
		cat1 := testutil.CreateTestCategory(t, db, type1.ID, nil)
		cat2 := testutil.CreateTestCategory(t, db, type2.ID, nil)
		recipient := testutil.CreateTestRecipient(t, db)

		item, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -99.99,
			Date:        time.Now(),
			Periodic:    true,
			Description: "monthly subscription",
			RecipientID: &recipient.ID,
			CategoryIDs: []uint{cat1.ID, cat2.ID},
		})
		testutil.AssertNoError(t, err)

		if item.Recipient == nil || item.Recipient.ID != recipient.ID {
			t.Errorf("expected recipient %d embedded, got %v", recipient.ID, item.Recipient)
		}
		if len(item.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(item.Categories))
		}
		if !item.Periodic {
			t.Error("expected periodic flag to be set")
		}
	})

	t.Run("duplicate_category_type_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		categoryType := testutil.CreateTestCategoryType(t, db)
		cat1 := testutil.CreateTestCategory(t, db, categoryType.ID, nil)
		cat2 := testutil.CreateTestCategory(t, db, categoryType.ID, nil)

		_, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -5,
			Date:        time.Now(),
			CategoryIDs: []uint{cat1.ID, cat2.ID},
		})
		testutil.AssertAppError(t, err, "ONE_CATEGORY_PER_TYPE")

		// The rejected create must not leave an item behind.
		var count int64
		if err := db.Model(&models.PaymentItem{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count items: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no items after rejected create, got %d", count)
		}
	})

	t.Run("unknown_category_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		_, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -5,
			Date:        time.Now(),
			CategoryIDs: []uint{99999},
		})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("unknown_recipient_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		nonexistent := uint(99999)
		_, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -5,
			Date:        time.Now(),
			RecipientID: &nonexistent,
		})
		testutil.AssertAppError(t, err, "RECIPIENT_NOT_FOUND")
	})
}

func TestGetPaymentItemByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		_, err := svc.GetPaymentItemByID(99999)
		testutil.AssertAppError(t, err, "PAYMENT_ITEM_NOT_FOUND")
	})
}

func TestListPaymentItems(t *testing.T) {
	t.Run("sign_filters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		testutil.CreateTestPaymentItem(t, db, -30)
		testutil.CreateTestPaymentItem(t, db, 100)
		testutil.CreateTestPaymentItem(t, db, 0)

		expenses, err := svc.ListPaymentItems(PaymentItemFilter{ExpenseOnly: true})
		testutil.AssertNoError(t, err)
		if len(expenses) != 1 || expenses[0].Amount != -30 {
			t.Errorf("expected single expense of -30, got %v", expenses)
		}

		income, err := svc.ListPaymentItems(PaymentItemFilter{IncomeOnly: true})
		testutil.AssertNoError(t, err)
		if len(income) != 1 || income[0].Amount != 100 {
			t.Errorf("expected single income of 100, got %v", income)
		}

		// Zero-amount items only show up in the unfiltered view.
		all, err := svc.ListPaymentItems(PaymentItemFilter{})
		testutil.AssertNoError(t, err)
		if len(all) != 3 {
			t.Errorf("expected 3 items unfiltered, got %d", len(all))
		}
	})

	t.Run("conflicting_filters_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		_, err := svc.ListPaymentItems(PaymentItemFilter{ExpenseOnly: true, IncomeOnly: true})
		testutil.AssertAppError(t, err, "CONFLICTING_FILTER")
	})

	t.Run("category_filter_includes_descendants", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		categoryType := testutil.CreateTestCategoryType(t, db)
		root := testutil.CreateTestCategory(t, db, categoryType.ID, nil)
		child := testutil.CreateTestCategory(t, db, categoryType.ID, &root.ID)
		grandchild := testutil.CreateTestCategory(t, db, categoryType.ID, &child.ID)
		unrelated := testutil.CreateTestCategory(t, db, categoryType.ID, nil)

		rootItem := testutil.CreateTestPaymentItem(t, db, -1)
		testutil.LinkItemToCategory(t, db, rootItem.ID, root.ID)
		grandchildItem := testutil.CreateTestPaymentItem(t, db, -2)
		testutil.LinkItemToCategory(t, db, grandchildItem.ID, grandchild.ID)
		unrelatedItem := testutil.CreateTestPaymentItem(t, db, -3)
		testutil.LinkItemToCategory(t, db, unrelatedItem.ID, unrelated.ID)

		items, err := svc.ListPaymentItems(PaymentItemFilter{CategoryIDs: []uint{root.ID}})
		testutil.AssertNoError(t, err)

		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		got := map[uint]bool{}
		for _, item := range items {
			got[item.ID] = true
		}
		if !got[rootItem.ID] || !got[grandchildItem.ID] {
			t.Errorf("expected items %d and %d, got %v", rootItem.ID, grandchildItem.ID, got)
		}
	})

	t.Run("item_matching_several_categories_appears_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		categoryType := testutil.CreateTestCategoryType(t, db)
		root := testutil.CreateTestCategory(t, db, categoryType.ID, nil)
		child := testutil.CreateTestCategory(t, db, categoryType.ID, &root.ID)

		item := testutil.CreateTestPaymentItem(t, db, -10)
		testutil.LinkItemToCategory(t, db, item.ID, root.ID)
		testutil.LinkItemToCategory(t, db, item.ID, child.ID)

		items, err := svc.ListPaymentItems(PaymentItemFilter{CategoryIDs: []uint{root.ID}})
		testutil.AssertNoError(t, err)
		if len(items) != 1 {
			t.Errorf("expected item to appear once, got %d results", len(items))
		}
	})

	t.Run("combined_sign_and_category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		categoryType := testutil.CreateTestCategoryType(t, db)
		cat := testutil.CreateTestCategory(t, db, categoryType.ID, nil)

		expense := testutil.CreateTestPaymentItem(t, db, -20)
		testutil.LinkItemToCategory(t, db, expense.ID, cat.ID)
		income := testutil.CreateTestPaymentItem(t, db, 20)
		testutil.LinkItemToCategory(t, db, income.ID, cat.ID)

		items, err := svc.ListPaymentItems(PaymentItemFilter{
			ExpenseOnly: true,
			CategoryIDs: []uint{cat.ID},
		})
		testutil.AssertNoError(t, err)
		if len(items) != 1 || items[0].ID != expense.ID {
			t.Errorf("expected only expense item %d, got %v", expense.ID, items)
		}
	})

	t.Run("ordered_by_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		first := testutil.CreateTestPaymentItem(t, db, -1)
		second := testutil.CreateTestPaymentItem(t, db, -2)

		items, err := svc.ListPaymentItems(PaymentItemFilter{})
		testutil.AssertNoError(t, err)
		if len(items) != 2 || items[0].ID != first.ID || items[1].ID != second.ID {
			t.Errorf("expected items ordered %d, %d, got %v", first.ID, second.ID, items)
		}
	})
}

func TestUpdatePaymentItem(t *testing.T) {
	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		created, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -50,
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Description: "original",
		})
		testutil.AssertNoError(t, err)

		amount := -75.0
		updated, err := svc.UpdatePaymentItem(created.ID, PaymentItemPatch{Amount: &amount})
		testutil.AssertNoError(t, err)

		if updated.Amount != -75 {
			t.Errorf("expected amount -75, got %f", updated.Amount)
		}
		if updated.Description != "original" {
			t.Errorf("expected description unchanged, got %s", updated.Description)
		}
		if len(updated.Categories) != 1 {
			t.Errorf("expected classification untouched, got %d categories", len(updated.Categories))
		}
	})

	t.Run("replaces_link_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		type1 := testutil.CreateTestCategoryType(t, db)
		type2 := testutil.CreateTestCategoryType(t, db)
		oldCat := testutil.CreateTestCategory(t, db, type1.ID, nil)
		newCat := testutil.CreateTestCategory(t, db, type2.ID, nil)

		created, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -10,
			Date:        time.Now(),
			CategoryIDs: []uint{oldCat.ID},
		})
		testutil.AssertNoError(t, err)

		ids := []uint{newCat.ID}
		updated, err := svc.UpdatePaymentItem(created.ID, PaymentItemPatch{CategoryIDs: &ids})
		testutil.AssertNoError(t, err)

		if len(updated.Categories) != 1 || updated.Categories[0].ID != newCat.ID {
			t.Errorf("expected link set replaced with %d, got %v", newCat.ID, updated.Categories)
		}
	})

	t.Run("empty_list_resets_to_unclassified", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		unclassified := testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		categoryType := testutil.CreateTestCategoryType(t, db)
		cat := testutil.CreateTestCategory(t, db, categoryType.ID, nil)

		created, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -10,
			Date:        time.Now(),
			CategoryIDs: []uint{cat.ID},
		})
		testutil.AssertNoError(t, err)

		empty := []uint{}
		updated, err := svc.UpdatePaymentItem(created.ID, PaymentItemPatch{CategoryIDs: &empty})
		testutil.AssertNoError(t, err)

		if len(updated.Categories) != 1 || updated.Categories[0].ID != unclassified.ID {
			t.Errorf("expected reset to UNCLASSIFIED %d, got %v", unclassified.ID, updated.Categories)
		}
	})

	t.Run("failed_classification_leaves_links_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		categoryType := testutil.CreateTestCategoryType(t, db)
		oldCat := testutil.CreateTestCategory(t, db, categoryType.ID, nil)
		dupe1 := testutil.CreateTestCategory(t, db, categoryType.ID, nil)
		dupe2 := testutil.CreateTestCategory(t, db, categoryType.ID, nil)

		created, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -10,
			Date:        time.Now(),
			CategoryIDs: []uint{oldCat.ID},
		})
		testutil.AssertNoError(t, err)

		ids := []uint{dupe1.ID, dupe2.ID}
		_, err = svc.UpdatePaymentItem(created.ID, PaymentItemPatch{CategoryIDs: &ids})
		testutil.AssertAppError(t, err, "ONE_CATEGORY_PER_TYPE")

		reloaded, err := svc.GetPaymentItemByID(created.ID)
		testutil.AssertNoError(t, err)
		if len(reloaded.Categories) != 1 || reloaded.Categories[0].ID != oldCat.ID {
			t.Errorf("expected prior link to %d untouched, got %v", oldCat.ID, reloaded.Categories)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		amount := 1.0
		_, err := svc.UpdatePaymentItem(99999, PaymentItemPatch{Amount: &amount})
		testutil.AssertAppError(t, err, "PAYMENT_ITEM_NOT_FOUND")
	})

	t.Run("unknown_recipient_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		item := testutil.CreateTestPaymentItem(t, db, -1)
		nonexistent := uint(99999)
		_, err := svc.UpdatePaymentItem(item.ID, PaymentItemPatch{RecipientID: &nonexistent})
		testutil.AssertAppError(t, err, "RECIPIENT_NOT_FOUND")
	})
}

func TestDeletePaymentItem(t *testing.T) {
	t.Run("removes_item_and_links", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.SeedDefaults(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		categoryType := testutil.CreateTestCategoryType(t, db)
		cat := testutil.CreateTestCategory(t, db, categoryType.ID, nil)

		created, err := svc.CreatePaymentItem(PaymentItemInput{
			Amount:      -10,
			Date:        time.Now(),
			CategoryIDs: []uint{cat.ID},
		})
		testutil.AssertNoError(t, err)
		if countLinks(t, db, created.ID) != 1 {
			t.Fatal("expected a link row before delete")
		}

		err = svc.DeletePaymentItem(created.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetPaymentItemByID(created.ID)
		testutil.AssertAppError(t, err, "PAYMENT_ITEM_NOT_FOUND")
		if countLinks(t, db, created.ID) != 0 {
			t.Error("expected link rows removed with the item")
		}

		// The category itself survives.
		var catCount int64
		if err := db.Model(&models.Category{}).Where("id = ?", cat.ID).Count(&catCount).Error; err != nil {
			t.Fatalf("failed to count categories: %v", err)
		}
		if catCount != 1 {
			t.Error("expected category to survive item deletion")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPaymentItemService(db, NewCategoryService(db))

		err := svc.DeletePaymentItem(99999)
		testutil.AssertAppError(t, err, "PAYMENT_ITEM_NOT_FOUND")
	})
}
