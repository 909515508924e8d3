package models

import (
	"gorm.io/gorm"
)

// Challan statuses.
// UNPAID -> DISPUTED -> UNPAID|CANCELLED, UNPAID -> PAID.
// PAID and CANCELLED are terminal; neither can re-enter DISPUTED.
const (
	ChallanStatusUnpaid    = "UNPAID"
	ChallanStatusDisputed  = "DISPUTED"
	ChallanStatusPaid      = "PAID"
	ChallanStatusCancelled = "CANCELLED"
)

type Challan struct {
	gorm.Model
	VehicleID         uint    `gorm:"not null;index" json:"vehicleId"`
	IssuedBy          uint    `gorm:"not null" json:"issuedBy"`
	ViolationType     string  `gorm:"not null" json:"violationType"` // SPEEDING, NO_HELMET, RED_LIGHT, ...
	Amount            float64 `gorm:"not null" json:"amount"`
	Status            string  `gorm:"default:'UNPAID'" json:"status"`
	DisputeReason     string  `json:"disputeReason"`
	DisputeResolvedBy *uint   `json:"disputeResolvedBy"`
	DisputeResolution string  `json:"disputeResolution"`
}
