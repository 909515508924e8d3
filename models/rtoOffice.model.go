package models

import (
	"gorm.io/gorm"
)

// RTO office statuses. Offices are soft-deleted by flipping to INACTIVE,
// never removed.
const (
	OfficeStatusActive   = "ACTIVE"
	OfficeStatusInactive = "INACTIVE"
)

type RtoOffice struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Code     string `gorm:"unique;not null" json:"code"`
	State    string `gorm:"not null" json:"state"`
	District string `gorm:"not null" json:"district"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Status   string `gorm:"default:'ACTIVE'" json:"status"`
}
