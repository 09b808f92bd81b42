package services

import (
	"io"
	"time"

	"financebook/internal/models"
)

// CategoryTypeServicer defines the contract for category type business logic.
type CategoryTypeServicer interface {
	CreateCategoryType(name, description string) (*models.CategoryType, error)
	ListCategoryTypes() ([]models.CategoryType, error)
	GetCategoryTypeByID(id uint) (*models.CategoryType, error)
}

// CategoryPatch holds optional category fields for partial updates.
// Nil fields are left unchanged.
type CategoryPatch struct {
	Name     *string
	TypeID   *uint
	ParentID *uint
	IconFile *string
}

// CategoryServicer defines the contract for the category tree store.
type CategoryServicer interface {
	CreateCategory(name string, typeID uint, parentID *uint, iconFile string) (*models.Category, error)
	UpdateCategory(id uint, patch CategoryPatch) (*models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	GetCategoryTree(id uint) (*models.Category, error)
	GetChildren(id uint) ([]models.Category, error)
	GetDescendants(id uint) ([]models.Category, error)
	GetCategoriesByType(typeID uint) ([]models.Category, error)
	ListCategories() ([]models.Category, error)
	ExpandWithDescendants(ids []uint) ([]uint, error)
}

// RecipientServicer defines the contract for recipient business logic.
type RecipientServicer interface {
	CreateRecipient(name, address string) (*models.Recipient, error)
	ListRecipients() ([]models.Recipient, error)
	GetRecipientByID(id uint) (*models.Recipient, error)
}

// PaymentItemInput holds the fields for creating a payment item.
type PaymentItemInput struct {
	Amount           float64
	Date             time.Time
	Periodic         bool
	Description      string
	InvoicePath      string
	ProductImagePath string
	RecipientID      *uint
	CategoryIDs      []uint
}

// PaymentItemPatch holds optional payment item fields for partial updates.
// Nil fields are left unchanged. A non-nil CategoryIDs replaces the whole
// link set; an explicitly empty list resets the item to UNCLASSIFIED.
type PaymentItemPatch struct {
	Amount           *float64
	Date             *time.Time
	Periodic         *bool
	Description      *string
	InvoicePath      *string
	ProductImagePath *string
	RecipientID      *uint
	CategoryIDs      *[]uint
}

// PaymentItemFilter holds optional filter parameters for listing payment items.
// ExpenseOnly and IncomeOnly are mutually exclusive. A non-empty CategoryIDs
// matches items linked to any of the given categories or their descendants.
type PaymentItemFilter struct {
	ExpenseOnly bool
	IncomeOnly  bool
	CategoryIDs []uint
}

// PaymentItemServicer defines the contract for the payment item ledger.
type PaymentItemServicer interface {
	CreatePaymentItem(input PaymentItemInput) (*models.PaymentItem, error)
	GetPaymentItemByID(id uint) (*models.PaymentItem, error)
	ListPaymentItems(filter PaymentItemFilter) ([]models.PaymentItem, error)
	UpdatePaymentItem(id uint, patch PaymentItemPatch) (*models.PaymentItem, error)
	DeletePaymentItem(id uint) error
}

// IconServicer defines the contract for category icon storage.
type IconServicer interface {
	SaveIcon(filename string, src io.Reader) (string, error)
	IconPath(filename string) (string, error)
}
