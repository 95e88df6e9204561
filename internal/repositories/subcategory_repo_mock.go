package repositories

import (
	"fmt"
	"sync"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockSubcategoryRepository is an in-memory implementation of SubcategoryRepository.
type MockSubcategoryRepository struct {
	subcategories map[string]models.Subcategory
	mu            sync.RWMutex
}

// NewMockSubcategoryRepository creates a new instance of MockSubcategoryRepository.
func NewMockSubcategoryRepository() *MockSubcategoryRepository {
	return &MockSubcategoryRepository{
		subcategories: make(map[string]models.Subcategory),
	}
}

// GetByID returns a subcategory by its ID.
func (r *MockSubcategoryRepository) GetByID(id string) (*models.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subcategory, ok := r.subcategories[id]
	if !ok {
		return nil, fmt.Errorf("subcategory with ID %s: %w", id, ErrSubcategoryNotFound)
	}
	return &subcategory, nil
}

// GetAll returns all subcategories.
func (r *MockSubcategoryRepository) GetAll() ([]models.Subcategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Subcategory, 0, len(r.subcategories))
	for _, s := range r.subcategories {
		list = append(list, s)
	}
	return list, nil
}

// Create adds a new subcategory.
func (r *MockSubcategoryRepository) Create(subcategory *models.Subcategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if subcategory.ID == "" {
		subcategory.ID = uuid.New().String()
	}
	r.subcategories[subcategory.ID] = *subcategory
	return nil
}

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[string]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]models.Category),
	}
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = *category
	return nil
}

// Count returns the number of categories.
func (r *MockCategoryRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.categories)), nil
}
