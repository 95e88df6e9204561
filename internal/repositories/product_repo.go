package repositories

import (
	"errors"

	"katalog/internal/models"
)

// Not-found errors surfaced by the repositories. Callers branch on these
// with errors.Is; everything else is treated as a storage fault.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrOrderNotFound       = errors.New("order not found")
)

// ProductFilter narrows a public catalog listing. Zero values mean "no
// constraint"; the price bounds are pointers so a zero minimum stays
// expressible. A product matches a price bound when at least one of its
// variations' price falls in range, and a size when at least one variation
// carries it.
type ProductFilter struct {
	SubcategoryID string
	MinPrice      *float64
	MaxPrice      *float64
	Size          models.Size
}

// SubcategoryProductCount is one row of the per-subcategory product
// breakdown. Subcategory is nil when the referenced subcategory no longer
// exists (left-join semantics).
type SubcategoryProductCount struct {
	Subcategory  *string `json:"subcategory"`
	ProductCount int64   `json:"productCount"`
}

// ProductRepository defines the interface for product data access.
//
// List and GetBySubcategory return only active products, ordered most
// recently created first (ties broken by id), with the subcategory joined.
// GetByID carries no active filter so direct lookups still resolve
// inactive products.
type ProductRepository interface {
	List(filter ProductFilter, page, limit int) ([]models.Product, int64, error)
	GetBySubcategory(subcategoryID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	Count() (int64, error)
	CountBySubcategory() ([]SubcategoryProductCount, error)
}
