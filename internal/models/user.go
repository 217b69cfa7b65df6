package models

import "time"

// UserRole is the capability level assigned to a user.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// Valid reports whether the role is one of the known capability levels.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// User represents an application account. The password hash and the
// verification token are never serialized into responses.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Email             string    `json:"email" gorm:"uniqueIndex;size:320;not null"`
	HashedPassword    string    `json:"-" gorm:"size:512;not null"`
	Role              UserRole  `json:"role" gorm:"size:16;not null;default:customer"`
	IsActive          bool      `json:"is_active" gorm:"not null;default:true"`
	IsVerified        bool      `json:"is_verified" gorm:"not null;default:false"`
	VerificationToken *string   `json:"-" gorm:"size:128;index"`
	CreatedAt         time.Time `json:"created_at"`
}
