package models

import (
	"time"

	"gorm.io/gorm"
)

// Driving license statuses
const (
	DlStatusActive  = "ACTIVE"
	DlStatusExpired = "EXPIRED"
	DlStatusRevoked = "REVOKED"
)

type DrivingLicense struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index" json:"userId"`
	DlNumber    string    `gorm:"unique;not null" json:"dlNumber"`
	LicenseType string    `gorm:"not null" json:"licenseType"`
	IssuedAt    time.Time `json:"issuedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Status      string    `gorm:"default:'ACTIVE'" json:"status"`
}
