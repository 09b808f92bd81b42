package models

import "time"

// PaymentItem is an atomic cash-flow event. Amount is signed: negative
// amounts are expenses, positive amounts income. The periodic flag is
// reserved for scheduled payment generation and currently unused.
type PaymentItem struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Amount           float64   `gorm:"not null" json:"amount"`
	Date             time.Time `gorm:"not null" json:"date"`
	Periodic         bool      `gorm:"not null;default:false" json:"periodic"`
	Description      string    `json:"description"`
	InvoicePath      string    `json:"invoice_path"`
	ProductImagePath string    `json:"product_image_path"`
	RecipientID      *uint     `json:"recipient_id"`

	// Relationships
	Recipient  *Recipient `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Categories []Category `gorm:"many2many:paymentitemcategorylink;joinForeignKey:payment_item_id;joinReferences:category_id" json:"categories"`
}

// TableName keeps the legacy table name.
func (PaymentItem) TableName() string { return "paymentitem" }

// PaymentItemCategoryLink is the association row between a payment item and
// a category. Link rows have no lifecycle of their own: they are replaced as
// a whole set when an item is classified and removed when it is deleted.
type PaymentItemCategoryLink struct {
	PaymentItemID uint `gorm:"primaryKey" json:"payment_item_id"`
	CategoryID    uint `gorm:"primaryKey" json:"category_id"`
}

// TableName keeps the legacy table name.
func (PaymentItemCategoryLink) TableName() string { return "paymentitemcategorylink" }
