package models

import (
	"time"

	"gorm.io/gorm"
)

// DL application statuses.
// PENDING -> VERIFIED -> TEST_SCHEDULED -> TEST_PASSED|TEST_FAILED -> APPROVED|REJECTED
const (
	DlAppStatusPending       = "PENDING"
	DlAppStatusVerified      = "VERIFIED"
	DlAppStatusTestScheduled = "TEST_SCHEDULED"
	DlAppStatusTestPassed    = "TEST_PASSED"
	DlAppStatusTestFailed    = "TEST_FAILED"
	DlAppStatusApproved      = "APPROVED"
	DlAppStatusRejected      = "REJECTED"
)

// Test results
const (
	TestResultPass = "PASS"
	TestResultFail = "FAIL"
)

// DefaultLicenseType is used when the applicant does not pick one.
const DefaultLicenseType = "LMV"

type DlApplication struct {
	gorm.Model
	UserID          uint       `gorm:"not null;index" json:"userId"`
	RtoOfficeID     uint       `gorm:"not null" json:"rtoOfficeId"`
	LicenseType     string     `gorm:"default:'LMV'" json:"licenseType"` // LMV, HMV, MCWG
	Status          string     `gorm:"default:'PENDING'" json:"status"`
	VerifiedBy      *uint      `json:"verifiedBy"`
	VerifiedAt      *time.Time `json:"verifiedAt"`
	TestScheduledAt *time.Time `json:"testScheduledAt"`
	TestResult      string     `json:"testResult"`
	ApprovedBy      *uint      `json:"approvedBy"`
	ApprovedAt      *time.Time `json:"approvedAt"`
	RejectedReason  string     `json:"rejectedReason"`
}
