package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financebook/internal/errors"
	"financebook/internal/services"
)

// CategoryTypeHandler handles category type requests
type CategoryTypeHandler struct {
	categoryTypeService services.CategoryTypeServicer
}

// NewCategoryTypeHandler creates a new CategoryTypeHandler
func NewCategoryTypeHandler(categoryTypeService services.CategoryTypeServicer) *CategoryTypeHandler {
	return &CategoryTypeHandler{categoryTypeService: categoryTypeService}
}

// CreateCategoryTypeRequest represents the request payload for creating a category type
type CreateCategoryTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategoryType handles the creation of a new category type
// @Summary     Create a category type
// @Description Create a new classification dimension
// @Tags        category-types
// @Accept      json
// @Produce     json
// @Param       request body CreateCategoryTypeRequest true "Category type details"
// @Success     201 {object} models.CategoryType "Category type created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category-types [post]
func (h *CategoryTypeHandler) CreateCategoryType(c *gin.Context) {
	var req CreateCategoryTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	categoryType, err := h.categoryTypeService.CreateCategoryType(req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, categoryType)
}

// ListCategoryTypes handles listing all category types
// @Summary     List category types
// @Description List all classification dimensions
// @Tags        category-types
// @Accept      json
// @Produce     json
// @Success     200 {array} models.CategoryType "List of category types"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /category-types [get]
func (h *CategoryTypeHandler) ListCategoryTypes(c *gin.Context) {
	types, err := h.categoryTypeService.ListCategoryTypes()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}
