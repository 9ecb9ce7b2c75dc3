package models

import "time"

// GuestSession is the anonymous browser identity a cart binds to.
type GuestSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
