package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID                uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string          `gorm:"not null" json:"title"`
	Description       string          `gorm:"type:text" json:"description"`
	Price             decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Active            bool            `gorm:"default:true" json:"active"`
	Categories        []Category      `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	DefaultCategoryID *uint           `json:"default_category_id,omitempty"`
	DefaultCategory   *Category       `gorm:"foreignKey:DefaultCategoryID" json:"default_category,omitempty"`
	Variations        []Variation     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variations,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Variation is the purchasable unit of a product. Every product gets a
// "Default" variation mirroring its own price the first time it is saved.
type Variation struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint             `gorm:"index;not null" json:"product_id"`
	Title     string           `gorm:"not null" json:"title"`
	Price     decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	SalePrice *decimal.Decimal `gorm:"type:decimal(16,2)" json:"sale_price,omitempty"`
	Active    bool             `gorm:"default:true" json:"active"`
	Inventory *int             `json:"inventory,omitempty"` // nil or negative = unlimited
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// EffectivePrice returns the sale price when one is set, otherwise the
// regular price.
func (v *Variation) EffectivePrice() decimal.Decimal {
	if v.SalePrice != nil {
		return *v.SalePrice
	}
	return v.Price
}
