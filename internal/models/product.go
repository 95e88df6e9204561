package models

import (
	"errors"
	"time"
)

// Size is one of the fixed clothing sizes a variation may carry.
type Size string

const (
	SizeXS   Size = "XS"
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeXXXL Size = "XXXL"
)

// Validation errors for the per-product variation invariants.
var (
	ErrEmptyVariations = errors.New("at least one variation is required")
	ErrDuplicateSize   = errors.New("duplicate sizes are not allowed in variations")
)

// Variation is a purchasable size/price/stock combination belonging to one
// product. Variations have no identity outside their product; replacing a
// product's variations replaces the whole set.
type Variation struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	ProductID string  `json:"-" gorm:"index;type:varchar(36)"`
	Size      Size    `json:"size" validate:"required,oneof=XS S M L XL XXL XXXL"`
	Price     float64 `json:"price" validate:"gte=0"`
	Stock     int     `json:"stock" validate:"gte=0"`
}

// Product represents a catalog product under a subcategory.
type Product struct {
	ID            string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string       `json:"name" validate:"required,max=100"`
	Description   string       `json:"description" validate:"omitempty,max=1000"`
	SubcategoryID string       `json:"subcategory_id" gorm:"index;type:varchar(36)" validate:"required"`
	Subcategory   *Subcategory `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	Images        []string     `json:"images" gorm:"serializer:json"`
	Variations    []Variation  `json:"variations" gorm:"foreignKey:ProductID"`
	Brand         string       `json:"brand" validate:"omitempty,max=50"`
	IsActive      bool         `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ValidateVariations checks the invariants a product's variation set must
// hold: the set is non-empty and no two entries share a size. It is invoked
// on create and on every update that replaces the variations.
func ValidateVariations(variations []Variation) error {
	if len(variations) == 0 {
		return ErrEmptyVariations
	}
	seen := make(map[Size]struct{}, len(variations))
	for _, v := range variations {
		if _, ok := seen[v.Size]; ok {
			return ErrDuplicateSize
		}
		seen[v.Size] = struct{}{}
	}
	return nil
}
