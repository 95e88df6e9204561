package repositories

import (
	"fmt"

	"katalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSubcategoryRepository is a GORM implementation of SubcategoryRepository.
type GORMSubcategoryRepository struct {
	db *gorm.DB
}

// NewGORMSubcategoryRepository creates a new instance of GORMSubcategoryRepository.
func NewGORMSubcategoryRepository(db *gorm.DB) *GORMSubcategoryRepository {
	return &GORMSubcategoryRepository{
		db: db,
	}
}

// GetByID retrieves a subcategory by its ID.
func (r *GORMSubcategoryRepository) GetByID(id string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	if err := r.db.First(&subcategory, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("subcategory with ID %s: %w", id, ErrSubcategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get subcategory by ID %s: %w", id, err)
	}
	return &subcategory, nil
}

// GetAll retrieves all subcategories.
func (r *GORMSubcategoryRepository) GetAll() ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := r.db.Find(&subcategories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all subcategories: %w", err)
	}
	return subcategories, nil
}

// Create creates a new subcategory in the database.
func (r *GORMSubcategoryRepository) Create(subcategory *models.Subcategory) error {
	if subcategory.ID == "" {
		subcategory.ID = uuid.New().String()
	}
	if err := r.db.Create(subcategory).Error; err != nil {
		return fmt.Errorf("failed to create subcategory: %w", err)
	}
	return nil
}

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Count returns the number of categories.
func (r *GORMCategoryRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
