package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles. This is the single authoritative role set; every route gate and
// controller check must use these constants.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleRtoAdmin   = "RTO_ADMIN"
	RoleRtoOfficer = "RTO_OFFICER"
	RolePolice     = "POLICE"
	RoleCitizen    = "CITIZEN"
	RoleAuditor    = "AUDITOR"
)

// AllRoles lists every assignable role.
var AllRoles = []string{
	RoleSuperAdmin,
	RoleRtoAdmin,
	RoleRtoOfficer,
	RolePolice,
	RoleCitizen,
	RoleAuditor,
}

// IsValidRole reports whether role belongs to the role set.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User account statuses
const (
	UserStatusActive    = "ACTIVE"
	UserStatusBlocked   = "BLOCKED"
	UserStatusSuspended = "SUSPENDED"
)

type User struct {
	gorm.Model
	Name          string     `gorm:"default:''" json:"name"`
	Email         string     `gorm:"unique;not null" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	Role          string     `gorm:"default:'CITIZEN'" json:"role"`
	Status        string     `gorm:"default:'ACTIVE'" json:"status"`
	Phone         string     `gorm:"default:''" json:"phone"`
	Address       string     `json:"address"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	AadhaarNumber string     `json:"aadhaarNumber"`
	RtoOfficeID   *uint      `json:"rtoOfficeId"` // home office for officials
	IsDeleted     bool       `gorm:"default:false" json:"-"`
}
