package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment statuses. BOOKED -> CANCELLED | COMPLETED.
// Rescheduling updates the date in place while status stays BOOKED.
const (
	AppointmentStatusBooked    = "BOOKED"
	AppointmentStatusCancelled = "CANCELLED"
	AppointmentStatusCompleted = "COMPLETED"
)

type Appointment struct {
	gorm.Model
	UserID          uint       `gorm:"not null;index" json:"userId"`
	RtoOfficeID     uint       `gorm:"not null" json:"rtoOfficeId"`
	Purpose         string     `gorm:"not null" json:"purpose"` // DL_TEST, VEHICLE_INSPECTION, DOCUMENT_SUBMISSION
	AppointmentDate time.Time  `gorm:"not null" json:"appointmentDate"`
	Status          string     `gorm:"default:'BOOKED'" json:"status"`
	CompletedBy     *uint      `json:"completedBy"`
	CompletedAt     *time.Time `json:"completedAt"`
	CompletionNotes string     `json:"completionNotes"`
}
