package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP backs the forgot-password flow. A code is single use and expires.
type OTP struct {
	gorm.Model
	Email     string    `gorm:"not null;index" json:"email"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	IsUsed    bool      `gorm:"default:false" json:"isUsed"`
}
