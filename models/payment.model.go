package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses. PENDING -> SUCCESS|FAILED, SUCCESS -> REFUNDED.
const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusSuccess  = "SUCCESS"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusRefunded = "REFUNDED"
)

// Payment types
const (
	PaymentTypeChallan             = "CHALLAN"
	PaymentTypeDlApplication       = "DL_APPLICATION"
	PaymentTypeVehicleRegistration = "VEHICLE_REGISTRATION"
	PaymentTypeOther               = "OTHER"
)

type Payment struct {
	gorm.Model
	ChallanID     *uint      `gorm:"index" json:"challanId"`
	UserID        uint       `gorm:"not null;index" json:"userId"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PaymentType   string     `gorm:"not null" json:"paymentType"`
	ReferenceID   *uint      `json:"referenceId"` // related entity for non-challan payments
	Status        string     `gorm:"default:'PENDING'" json:"status"`
	TransactionID string     `json:"transactionId"`
	PaymentMethod string     `json:"paymentMethod"` // UPI, CARD, NETBANKING, CASH
	PaidAt        *time.Time `json:"paidAt"`
	RefundedAt    *time.Time `json:"refundedAt"`
	RefundReason  string     `json:"refundReason"`
}
