package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// categoryService implements the category tree store: CRUD over the taxonomy
// forest plus parent/child navigation and descendant enumeration.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category under an existing category type,
// optionally attached to an existing parent.
func (s *categoryService) CreateCategory(name string, typeID uint, parentID *uint, iconFile string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	if err := s.checkTypeExists(typeID); err != nil {
		return nil, err
	}
	if parentID != nil {
		if _, err := s.GetCategoryByID(*parentID); err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "Parent category not found")
			}
			return nil, err
		}
	}

	category := &models.Category{
		Name:     name,
		TypeID:   typeID,
		ParentID: parentID,
		IconFile: iconFile,
	}
	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// UpdateCategory applies a partial update. A new parent is rejected if it is
// the category itself or one of its descendants, keeping each type's
// parent/child graph a forest.
func (s *categoryService) UpdateCategory(id uint, patch CategoryPatch) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if patch.TypeID != nil {
		if err := s.checkTypeExists(*patch.TypeID); err != nil {
			return nil, err
		}
	}

	if patch.ParentID != nil {
		if *patch.ParentID == id {
			return nil, apperrors.ErrSelfParentCategory
		}
		if _, err := s.GetCategoryByID(*patch.ParentID); err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "Parent category not found")
			}
			return nil, err
		}
		if err := s.checkNoCycle(id, *patch.ParentID); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.TypeID != nil {
		updates["type_id"] = *patch.TypeID
	}
	if patch.ParentID != nil {
		updates["parent_id"] = *patch.ParentID
	}
	if patch.IconFile != nil {
		updates["icon_file"] = *patch.IconFile
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return category, nil
}

// checkNoCycle walks ancestors upward from the proposed parent; reaching the
// category being updated means the assignment would close a cycle. The
// visited set terminates the walk even if the stored chain is already
// corrupt.
func (s *categoryService) checkNoCycle(id, parentID uint) error {
	visited := map[uint]bool{parentID: true}
	current := parentID
	for {
		var ancestor models.Category
		if err := s.db.Select("id", "parent_id").First(&ancestor, current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if ancestor.ParentID == nil {
			return nil
		}
		next := *ancestor.ParentID
		if next == id {
			return apperrors.ErrCategoryCycle
		}
		if visited[next] {
			return nil
		}
		visited[next] = true
		current = next
	}
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategoryTree retrieves a category with its direct children embedded.
func (s *categoryService) GetCategoryTree(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("Children").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetChildren retrieves the direct children of a category.
func (s *categoryService) GetChildren(id uint) ([]models.Category, error) {
	if _, err := s.GetCategoryByID(id); err != nil {
		return nil, err
	}

	var children []models.Category
	if err := s.db.Where("parent_id = ?", id).Find(&children).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return children, nil
}

// GetDescendants retrieves all descendants of a category, breadth-first
// starting at its direct children. The root itself is excluded. Each node is
// visited at most once so the traversal terminates even on corrupted data
// where a parent chain closes a cycle.
func (s *categoryService) GetDescendants(id uint) ([]models.Category, error) {
	if _, err := s.GetCategoryByID(id); err != nil {
		return nil, err
	}

	descendants := []models.Category{}
	visited := map[uint]bool{id: true}
	queue := []uint{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		var children []models.Category
		if err := s.db.Where("parent_id = ?", current).Find(&children).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			descendants = append(descendants, child)
			queue = append(queue, child.ID)
		}
	}
	return descendants, nil
}

// GetCategoriesByType retrieves all categories of a category type. An
// unknown type yields an empty list.
func (s *categoryService) GetCategoriesByType(typeID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("type_id = ?", typeID).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ListCategories retrieves all categories across all types.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ExpandWithDescendants expands a set of category ids to the union of the
// ids themselves and all their descendants. Unknown ids pass through
// unexpanded; the filter engine simply matches nothing for them.
func (s *categoryService) ExpandWithDescendants(ids []uint) ([]uint, error) {
	expanded := make(map[uint]bool, len(ids))
	queue := make([]uint, 0, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if expanded[id] {
			continue
		}
		expanded[id] = true
		queue = append(queue, id)
		result = append(result, id)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		var childIDs []uint
		if err := s.db.Model(&models.Category{}).
			Where("parent_id = ?", current).
			Pluck("id", &childIDs).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, childID := range childIDs {
			if expanded[childID] {
				continue
			}
			expanded[childID] = true
			queue = append(queue, childID)
			result = append(result, childID)
		}
	}
	return result, nil
}

func (s *categoryService) checkTypeExists(typeID uint) error {
	var categoryType models.CategoryType
	if err := s.db.First(&categoryType, typeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryTypeNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
