package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "financebook/internal/errors"
	"financebook/internal/models"
)

// paymentItemService implements the payment item ledger and its filtered
// views. Item rows and their category link rows are always written inside
// one database transaction so a reader never observes a partially linked
// item.
type paymentItemService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewPaymentItemService creates a new PaymentItemServicer.
func NewPaymentItemService(db *gorm.DB, categoryService CategoryServicer) PaymentItemServicer {
	return &paymentItemService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreatePaymentItem validates the recipient and the requested
// classification, then persists the item together with its link rows.
func (s *paymentItemService) CreatePaymentItem(input PaymentItemInput) (*models.PaymentItem, error) {
	if input.RecipientID != nil {
		if err := s.checkRecipientExists(*input.RecipientID); err != nil {
			return nil, err
		}
	}

	item := &models.PaymentItem{
		Amount:           input.Amount,
		Date:             input.Date,
		Periodic:         input.Periodic,
		Description:      input.Description,
		InvoicePath:      input.InvoicePath,
		ProductImagePath: input.ProductImagePath,
		RecipientID:      input.RecipientID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		categories, err := resolveClassification(tx, input.CategoryIDs)
		if err != nil {
			return err
		}
		if err := tx.Create(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return replaceLinks(tx, item.ID, categories)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPaymentItemByID(item.ID)
}

// GetPaymentItemByID retrieves a payment item with its recipient and
// categories embedded.
func (s *paymentItemService) GetPaymentItemByID(id uint) (*models.PaymentItem, error) {
	var item models.PaymentItem
	if err := s.db.Preload("Recipient").Preload("Categories").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaymentItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &item, nil
}

// ListPaymentItems returns a filtered view over the ledger. A category
// filter matches items linked to any of the given categories or their
// descendants; an item linked to several matching categories appears once.
// Results are ordered by id ascending.
func (s *paymentItemService) ListPaymentItems(filter PaymentItemFilter) ([]models.PaymentItem, error) {
	if filter.ExpenseOnly && filter.IncomeOnly {
		return nil, apperrors.ErrConflictingFilter
	}

	q := s.db.Preload("Recipient").Preload("Categories")
	if filter.ExpenseOnly {
		q = q.Where("amount < 0")
	}
	if filter.IncomeOnly {
		q = q.Where("amount > 0")
	}

	if len(filter.CategoryIDs) > 0 {
		expanded, err := s.categoryService.ExpandWithDescendants(filter.CategoryIDs)
		if err != nil {
			return nil, err
		}
		linked := s.db.Model(&models.PaymentItemCategoryLink{}).
			Select("payment_item_id").
			Where("category_id IN ?", expanded)
		q = q.Where("id IN (?)", linked)
	}

	var items []models.PaymentItem
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

// UpdatePaymentItem applies a partial update. When CategoryIDs is supplied,
// the whole link set is replaced; validation failures roll back the entire
// update, leaving the prior state untouched.
func (s *paymentItemService) UpdatePaymentItem(id uint, patch PaymentItemPatch) (*models.PaymentItem, error) {
	if _, err := s.GetPaymentItemByID(id); err != nil {
		return nil, err
	}

	if patch.RecipientID != nil {
		if err := s.checkRecipientExists(*patch.RecipientID); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if patch.Amount != nil {
		updates["amount"] = *patch.Amount
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Periodic != nil {
		updates["periodic"] = *patch.Periodic
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.InvoicePath != nil {
		updates["invoice_path"] = *patch.InvoicePath
	}
	if patch.ProductImagePath != nil {
		updates["product_image_path"] = *patch.ProductImagePath
	}
	if patch.RecipientID != nil {
		updates["recipient_id"] = *patch.RecipientID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.PaymentItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if patch.CategoryIDs != nil {
			categories, err := resolveClassification(tx, *patch.CategoryIDs)
			if err != nil {
				return err
			}
			if err := tx.Where("payment_item_id = ?", id).
				Delete(&models.PaymentItemCategoryLink{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return replaceLinks(tx, id, categories)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPaymentItemByID(id)
}

// DeletePaymentItem removes a payment item and its link rows.
func (s *paymentItemService) DeletePaymentItem(id uint) error {
	if _, err := s.GetPaymentItemByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_item_id = ?", id).
			Delete(&models.PaymentItemCategoryLink{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.PaymentItem{}, id).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func replaceLinks(tx *gorm.DB, itemID uint, categories []models.Category) error {
	links := make([]models.PaymentItemCategoryLink, 0, len(categories))
	for _, category := range categories {
		links = append(links, models.PaymentItemCategoryLink{
			PaymentItemID: itemID,
			CategoryID:    category.ID,
		})
	}
	if len(links) == 0 {
		return nil
	}
	if err := tx.Create(&links).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *paymentItemService) checkRecipientExists(id uint) error {
	var recipient models.Recipient
	if err := s.db.First(&recipient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.WithMessage(apperrors.ErrRecipientNotFound,
				fmt.Sprintf("Recipient with id %d not found", id))
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
