package services

import (
	"testing"

	"financebook/internal/testutil"
)

func TestCreateCategoryType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryTypeService(db)

		categoryType, err := svc.CreateCategoryType("necessity", "need vs want")
		testutil.AssertNoError(t, err)

		if categoryType.ID == 0 {
			t.Fatal("expected non-zero category type ID")
		}
		if categoryType.Name != "necessity" {
			t.Errorf("expected name necessity, got %s", categoryType.Name)
		}
		if categoryType.Description != "need vs want" {
			t.Errorf("expected description 'need vs want', got %s", categoryType.Description)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryTypeService(db)

		_, err := svc.CreateCategoryType("", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListCategoryTypes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryTypeService(db)

	testutil.CreateTestCategoryType(t, db)
	testutil.CreateTestCategoryType(t, db)

	types, err := svc.ListCategoryTypes()
	testutil.AssertNoError(t, err)
	if len(types) != 2 {
		t.Errorf("expected 2 category types, got %d", len(types))
	}
}

func TestGetCategoryTypeByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryTypeService(db)

		created := testutil.CreateTestCategoryType(t, db)
		got, err := svc.GetCategoryTypeByID(created.ID)
		testutil.AssertNoError(t, err)
		if got.Name != created.Name {
			t.Errorf("expected name %s, got %s", created.Name, got.Name)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryTypeService(db)

		_, err := svc.GetCategoryTypeByID(99999)
		testutil.AssertAppError(t, err, "CATEGORY_TYPE_NOT_FOUND")
	})
}
