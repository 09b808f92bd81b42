package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"financebook/internal/models"
	"financebook/internal/services"
)

// --- mock category type service ---

type mockCategoryTypeService struct {
	createCategoryTypeFn  func(name, description string) (*models.CategoryType, error)
	listCategoryTypesFn   func() ([]models.CategoryType, error)
	getCategoryTypeByIDFn func(id uint) (*models.CategoryType, error)
}

func (m *mockCategoryTypeService) CreateCategoryType(name, description string) (*models.CategoryType, error) {
	if m.createCategoryTypeFn != nil {
		return m.createCategoryTypeFn(name, description)
	}
	return &models.CategoryType{}, nil
}

func (m *mockCategoryTypeService) ListCategoryTypes() ([]models.CategoryType, error) {
	if m.listCategoryTypesFn != nil {
		return m.listCategoryTypesFn()
	}
	return []models.CategoryType{}, nil
}

func (m *mockCategoryTypeService) GetCategoryTypeByID(id uint) (*models.CategoryType, error) {
	if m.getCategoryTypeByIDFn != nil {
		return m.getCategoryTypeByIDFn(id)
	}
	return &models.CategoryType{}, nil
}

var _ services.CategoryTypeServicer = (*mockCategoryTypeService)(nil)

func setupCategoryTypeRouter(handler *CategoryTypeHandler) *gin.Engine {
	r := gin.New()
	r.POST("/category-types", handler.CreateCategoryType)
	r.GET("/category-types", handler.ListCategoryTypes)
	return r
}

func TestCategoryTypeHandler_CreateCategoryType(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockCategoryTypeService{
			createCategoryTypeFn: func(name, description string) (*models.CategoryType, error) {
				return &models.CategoryType{ID: 1, Name: name, Description: description}, nil
			},
		}
		r := setupCategoryTypeRouter(NewCategoryTypeHandler(svc))

		rec := doRequest(r, "POST", "/category-types",
			`{"name":"necessity","description":"need vs want"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["name"] != "necessity" {
			t.Errorf("expected name necessity, got %v", result["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryTypeRouter(NewCategoryTypeHandler(&mockCategoryTypeService{}))

		rec := doRequest(r, "POST", "/category-types", `{"description":"no name"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryTypeHandler_ListCategoryTypes(t *testing.T) {
	svc := &mockCategoryTypeService{
		listCategoryTypesFn: func() ([]models.CategoryType, error) {
			return []models.CategoryType{{ID: 1, Name: "standard"}, {ID: 2, Name: "necessity"}}, nil
		},
	}
	r := setupCategoryTypeRouter(NewCategoryTypeHandler(svc))

	rec := doRequest(r, "GET", "/category-types", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	types := parseJSONList(t, rec)
	if len(types) != 2 {
		t.Errorf("expected 2 category types, got %d", len(types))
	}
}
