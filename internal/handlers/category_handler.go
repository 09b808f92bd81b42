package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/services"
)

// CategoryHandler handles category taxonomy requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	TypeID   uint   `json:"type_id" binding:"required"`
	ParentID *uint  `json:"parent_id"`
	IconFile string `json:"icon_file" binding:"omitempty,icon_file"`
}

// UpdateCategoryRequest represents the request payload for a partial
// category update. Absent fields are left unchanged.
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	TypeID   *uint   `json:"type_id"`
	ParentID *uint   `json:"parent_id"`
	IconFile *string `json:"icon_file" binding:"omitempty,icon_file"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a new category under an existing category type, optionally below a parent
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category type or parent category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.TypeID, req.ParentID, req.IconFile)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles the partial update of a category
// @Summary     Update category
// @Description Partially update a category; parent changes that would close a cycle are rejected
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to update"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input, self-parent or cycle"
// @Failure     404 {object} ErrorResponse "Category, parent or category type not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(id, services.CategoryPatch{
		Name:     req.Name,
		TypeID:   req.TypeID,
		ParentID: req.ParentID,
		IconFile: req.IconFile,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetCategoryTree handles the retrieval of a category with its children
// @Summary     Get category tree
// @Description Get a category with its direct children embedded
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category "Category with children"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/tree [get]
func (h *CategoryHandler) GetCategoryTree(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryTree(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetCategoryDescendants handles the recursive enumeration of a category's descendants
// @Summary     List category descendants
// @Description List all descendants of a category, breadth-first, excluding the category itself
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {array} models.Category "Descendant categories"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/descendants [get]
func (h *CategoryHandler) GetCategoryDescendants(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	descendants, err := h.categoryService.GetDescendants(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, descendants)
}

// GetCategoriesByType handles listing the categories of one type
// @Summary     List categories by type
// @Description List all categories belonging to a category type
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path int true "Category type ID"
// @Success     200 {array} models.Category "Categories of the type"
// @Failure     400 {object} ErrorResponse "Invalid category type ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/by-type/{id} [get]
func (h *CategoryHandler) GetCategoriesByType(c *gin.Context) {
	typeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.GetCategoriesByType(typeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ListCategories handles listing all categories
// @Summary     List all categories
// @Description List all categories across all category types
// @Tags        categories
// @Accept      json
// @Produce     json
// @Success     200 {array} models.Category "All categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
