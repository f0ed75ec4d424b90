package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values for User.Role
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	FullName  string `json:"full_name" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"`
	Phone     string `json:"phone" gorm:"default:''"`
	Sector    string `json:"sector" gorm:"default:''"` // see models.Sectors
	Role      string `json:"role" gorm:"default:'user'"`
	Password  string `json:"-" gorm:"not null"`
	AvatarURL string `json:"avatar_url" gorm:"default:''"`

	// Entitlement projection of the latest completed payment. The payments
	// table is the source of truth, these two fields only gate content access.
	Plan       string `json:"plan" gorm:"default:''"`
	PlanActive bool   `json:"plan_active" gorm:"default:false"`

	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `gorm:"default:false" json:"-"`
}
