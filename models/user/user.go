package user

import (
	"time"
)

// Role controls which route groups a user may reach.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// User represents a marketplace account (customer, vendor or admin).
type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid         string  `gorm:"type:varchar(255);not null;unique" json:"uuid"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Email        string  `gorm:"type:varchar(255);not null;unique" json:"email"`
	Phone        *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role    `gorm:"size:20;not null;default:customer" json:"role"`
	Avatar       string  `gorm:"type:varchar(2048)" json:"avatar"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
