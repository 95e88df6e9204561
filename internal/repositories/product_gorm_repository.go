package repositories

import (
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// filtered builds the active-only listing query with the filter applied.
// Price and size predicates are separate EXISTS subqueries over the
// variations table: each must hold for some variation, not necessarily the
// same one.
func (r *GORMProductRepository) filtered(filter ProductFilter) *gorm.DB {
	query := r.db.Model(&models.Product{}).Where("products.is_active = ?", true)

	if filter.SubcategoryID != "" {
		query = query.Where("products.subcategory_id = ?", filter.SubcategoryID)
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := r.db.Table("variations").Select("1").Where("variations.product_id = products.id")
		if filter.MinPrice != nil {
			price = price.Where("variations.price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			price = price.Where("variations.price <= ?", *filter.MaxPrice)
		}
		query = query.Where("EXISTS (?)", price)
	}
	if filter.Size != "" {
		size := r.db.Table("variations").Select("1").
			Where("variations.product_id = products.id AND variations.size = ?", filter.Size)
		query = query.Where("EXISTS (?)", size)
	}
	return query
}

// List returns one page of active products matching the filter, newest
// first, plus the total match count.
func (r *GORMProductRepository) List(filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	query := r.filtered(filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.
		Preload("Variations").
		Preload("Subcategory").
		Order("products.created_at DESC, products.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetBySubcategory retrieves all active products under a subcategory.
func (r *GORMProductRepository) GetBySubcategory(subcategoryID string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Variations").
		Preload("Subcategory").
		Where("subcategory_id = ? AND is_active = ?", subcategoryID, true).
		Order("created_at DESC, id DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products for subcategory %s: %w", subcategoryID, err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID, active or not.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Variations").
		Preload("Subcategory").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product with its variations in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Omit("Subcategory").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists a product and replaces its variation set wholesale.
func (r *GORMProductRepository) Update(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit("Variations", "Subcategory").Save(product)
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Save does not return ErrRecordNotFound for a missing row,
			// so we check RowsAffected.
			return fmt.Errorf("product with ID %s: %w", product.ID, ErrProductNotFound)
		}

		if err := tx.Delete(&models.Variation{}, "product_id = ?", product.ID).Error; err != nil {
			return fmt.Errorf("failed to clear variations for product %s: %w", product.ID, err)
		}
		if len(product.Variations) == 0 {
			return nil
		}
		for i := range product.Variations {
			product.Variations[i].ID = 0
			product.Variations[i].ProductID = product.ID
		}
		if err := tx.Create(&product.Variations).Error; err != nil {
			return fmt.Errorf("failed to store variations for product %s: %w", product.ID, err)
		}
		return nil
	})
	return err
}

// Delete removes a product and its variations by product ID.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	if err := r.db.Delete(&models.Variation{}, "product_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete variations for product %s: %w", id, err)
	}
	return nil
}

// Count returns the number of products, active or not.
func (r *GORMProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// CountBySubcategory groups products by subcategory with the subcategory
// name left-joined in. Products whose subcategory was deleted still count,
// under a NULL name.
func (r *GORMProductRepository) CountBySubcategory() ([]SubcategoryProductCount, error) {
	var rows []SubcategoryProductCount
	err := r.db.Model(&models.Product{}).
		Select("subcategories.name AS subcategory, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN subcategories ON subcategories.id = products.subcategory_id").
		Group("products.subcategory_id, subcategories.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count products by subcategory: %w", err)
	}
	return rows, nil
}
