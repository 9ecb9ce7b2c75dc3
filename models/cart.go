package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SessionID string          `gorm:"uniqueIndex;not null" json:"session_id"` // Enforces ONE cart per session
	UserID    string          `gorm:"index" json:"user_id,omitempty"`         // Set once an authenticated user claims the cart
	Items     []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(16,2);default:0" json:"subtotal"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CartItem holds one row per distinct variation in a cart. LineItemTotal is
// a cached value: effective unit price x quantity, captured at write time.
// A later price change on the variation does not touch existing rows.
type CartItem struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CartID        uint            `gorm:"index;uniqueIndex:idx_cart_variation" json:"cart_id"`
	VariationID   uint            `gorm:"uniqueIndex:idx_cart_variation" json:"variation_id"`
	Variation     Variation       `gorm:"foreignKey:VariationID" json:"variation"`
	Quantity      int             `gorm:"not null;default:1" json:"quantity"`
	LineItemTotal decimal.Decimal `gorm:"type:decimal(16,2)" json:"line_item_total"`
	AddedAt       time.Time       `json:"added_at"`
}
