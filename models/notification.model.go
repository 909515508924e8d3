package models

import (
	"gorm.io/gorm"
)

// Notification is a fire-and-forget record written after workflow
// transitions. The message is immutable once created; only IsRead changes.
type Notification struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"userId"`
	Message string `gorm:"not null" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"isRead"`
}
