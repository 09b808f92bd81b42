package models

// Recipient is the counterparty of a payment item.
type Recipient struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
}

// TableName keeps the legacy table name.
func (Recipient) TableName() string { return "recipient" }
