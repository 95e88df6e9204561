package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

func matchesFilter(p models.Product, filter ProductFilter) bool {
	if !p.IsActive {
		return false
	}
	if filter.SubcategoryID != "" && p.SubcategoryID != filter.SubcategoryID {
		return false
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		inRange := false
		for _, v := range p.Variations {
			if filter.MinPrice != nil && v.Price < *filter.MinPrice {
				continue
			}
			if filter.MaxPrice != nil && v.Price > *filter.MaxPrice {
				continue
			}
			inRange = true
			break
		}
		if !inRange {
			return false
		}
	}
	if filter.Size != "" {
		hasSize := false
		for _, v := range p.Variations {
			if v.Size == filter.Size {
				hasSize = true
				break
			}
		}
		if !hasSize {
			return false
		}
	}
	return true
}

// sortNewestFirst orders products by creation time descending, falling back
// to id for identical timestamps.
func sortNewestFirst(products []models.Product) {
	sort.Slice(products, func(i, j int) bool {
		if products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].ID > products[j].ID
		}
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}

// List returns one page of active products matching the filter plus the
// total match count.
func (r *MockProductRepository) List(filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}
	sortNewestFirst(matched)

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Product{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// GetBySubcategory returns all active products under a subcategory.
func (r *MockProductRepository) GetBySubcategory(subcategoryID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, p := range r.products {
		if p.IsActive && p.SubcategoryID == subcategoryID {
			matched = append(matched, p)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// Create adds a new product, filling in the generated id and timestamps.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, ErrProductNotFound)
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// Count returns the number of products, active or not.
func (r *MockProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// CountBySubcategory groups products by subcategory id. The in-memory store
// keeps no subcategory names, so rows carry the id in the name slot and a
// product with no subcategory reference yields a nil-name row.
func (r *MockProductRepository) CountBySubcategory() ([]SubcategoryProductCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int64)
	for _, p := range r.products {
		counts[p.SubcategoryID]++
	}
	rows := make([]SubcategoryProductCount, 0, len(counts))
	for id, count := range counts {
		row := SubcategoryProductCount{ProductCount: count}
		if id != "" {
			name := id
			row.Subcategory = &name
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := "", ""
		if rows[i].Subcategory != nil {
			a = *rows[i].Subcategory
		}
		if rows[j].Subcategory != nil {
			b = *rows[j].Subcategory
		}
		return a < b
	})
	return rows, nil
}
