package models

import "time"

// UserCheckout captures the email a checkout runs under. Guests check out
// with a bare email; authenticated users get linked one-to-one.
type UserCheckout struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    *string `gorm:"uniqueIndex" json:"user_id,omitempty"`
	Email     string  `gorm:"unique;not null" json:"email"`
	CreatedAt time.Time
}

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created" // Checkout started, nothing paid
)

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserCheckoutID uint        `gorm:"index" json:"user_checkout_id"`
	CartID         uint        `gorm:"index" json:"cart_id"`
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'created'" json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
