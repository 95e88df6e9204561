package models

import "time"

// Category is a top-level taxonomy node. The catalog core only counts
// categories for analytics; category management lives elsewhere.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subcategory is the taxonomy node a product must reference. It is shared by
// reference: the catalog never mutates it, only checks existence and joins
// its name into product responses.
type Subcategory struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	CategoryID string    `json:"category_id" gorm:"index;type:varchar(36)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
