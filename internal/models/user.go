package models

import "gorm.io/gorm"

// User roles. Admin users may mutate the catalog and read analytics.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents a user of the platform.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(20)" validate:"omitempty,oneof=admin customer"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
