package repositories

import "katalog/internal/models"

// SubcategoryRepository defines the interface for subcategory lookups. The
// catalog only ever checks existence and lists; subcategory management is
// owned by the category service.
type SubcategoryRepository interface {
	GetByID(id string) (*models.Subcategory, error)
	GetAll() ([]models.Subcategory, error)
	Create(subcategory *models.Subcategory) error
}

// CategoryRepository defines the interface for category data access used by
// the catalog: seeding and analytics counting.
type CategoryRepository interface {
	Create(category *models.Category) error
	Count() (int64, error)
}
