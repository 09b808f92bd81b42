package models

// Names of the reserved taxonomy rows seeded at startup.
const (
	StandardTypeName         = "standard"
	UnclassifiedCategoryName = "UNCLASSIFIED"
)

// CategoryType is a user-defined classification dimension, e.g. "Spending Area".
// Categories form one tree forest per type.
type CategoryType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
}

// TableName keeps the legacy table name.
func (CategoryType) TableName() string { return "categorytype" }

// Category is a node in a taxonomy tree under exactly one CategoryType.
// ParentID is nil for roots.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	TypeID   uint   `gorm:"not null" json:"type_id"`
	ParentID *uint  `json:"parent_id"`
	IconFile string `json:"icon_file"`

	// Relationships
	Type     *CategoryType `gorm:"foreignKey:TypeID" json:"-"`
	Parent   *Category     `gorm:"foreignKey:ParentID" json:"-"`
	Children []Category    `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

// TableName keeps the legacy table name.
func (Category) TableName() string { return "category" }
