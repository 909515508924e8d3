package models

import (
	"time"

	"gorm.io/gorm"
)

// Vehicle registration statuses.
// PENDING -> VERIFIED -> APPROVED | REJECTED, APPROVED -> SCRAPPED (terminal).
const (
	VehicleStatusPending  = "PENDING"
	VehicleStatusVerified = "VERIFIED"
	VehicleStatusApproved = "APPROVED"
	VehicleStatusRejected = "REJECTED"
	VehicleStatusScrapped = "SCRAPPED"
)

type Vehicle struct {
	gorm.Model
	OwnerID            uint       `gorm:"not null;index" json:"ownerId"`
	RegistrationNumber *string    `gorm:"unique" json:"registrationNumber"` // nil until APPROVED
	VehicleType        string     `gorm:"not null" json:"vehicleType"`      // TWO_WHEELER, FOUR_WHEELER, COMMERCIAL
	Make               string     `json:"make"`
	VehicleModel       string     `json:"model"`
	Year               int        `json:"year"`
	Color              string     `json:"color"`
	EngineNumber       string     `gorm:"not null" json:"engineNumber"`
	ChassisNumber      string     `gorm:"not null" json:"chassisNumber"`
	RtoOfficeID        uint       `gorm:"not null" json:"rtoOfficeId"`
	Status             string     `gorm:"default:'PENDING'" json:"status"`
	VerifiedBy         *uint      `json:"verifiedBy"`
	VerifiedAt         *time.Time `json:"verifiedAt"`
	ApprovedBy         *uint      `json:"approvedBy"`
	ApprovedAt         *time.Time `json:"approvedAt"`
	RejectedReason     string     `json:"rejectedReason"`
}
