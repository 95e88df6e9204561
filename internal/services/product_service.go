package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// CreateProductInput carries the fields a create request may supply. Image
// URLs arrive separately, already resolved by the upload layer.
type CreateProductInput struct {
	Name          string             `json:"name" validate:"required,max=100"`
	Description   string             `json:"description" validate:"omitempty,max=1000"`
	SubcategoryID string             `json:"subcategory_id" validate:"required"`
	Variations    []models.Variation `json:"variations" validate:"omitempty,dive"`
	Brand         string             `json:"brand" validate:"omitempty,max=50"`
}

// UpdateProductInput carries the fields an update request may supply. Every
// field is a pointer so "field absent" stays distinguishable from an
// explicit zero value: is_active=false or description="" overwrite, a
// missing field retains the stored value.
type UpdateProductInput struct {
	Name          *string             `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string             `json:"description" validate:"omitempty,max=1000"`
	SubcategoryID *string             `json:"subcategory_id"`
	Variations    *[]models.Variation `json:"variations" validate:"omitempty,dive"`
	Brand         *string             `json:"brand" validate:"omitempty,max=50"`
	IsActive      *bool               `json:"is_active"`
}

// ProductService handles business logic related to products: it is the only
// writer of product state and the query surface for the public catalog.
type ProductService struct {
	repo            repositories.ProductRepository
	subcategoryRepo repositories.SubcategoryRepository
	mqClient        *rabbitmq.Client
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, subcategoryRepo repositories.SubcategoryRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:            repo,
		subcategoryRepo: subcategoryRepo,
		mqClient:        mqClient,
	}
}

// ListProducts retrieves one page of active products matching the filter,
// newest first, plus the total match count. Page defaults to 1 and limit
// to 10; a page past the end of the result yields an empty slice.
func (s *ProductService) ListProducts(filter repositories.ProductFilter, page, limit int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.repo.List(filter, page, limit)
}

// GetProductsBySubcategory retrieves all active products under a subcategory.
func (s *ProductService) GetProductsBySubcategory(subcategoryID string) ([]models.Product, error) {
	return s.repo.GetBySubcategory(subcategoryID)
}

// GetProductByID retrieves a single product by its ID, active or not.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates and persists a new product. The referenced
// subcategory must exist and the variation set must be non-empty with
// unique sizes; nothing is written when either check fails. New products
// are always active.
func (s *ProductService) CreateProduct(input CreateProductInput, imageURLs []string) (*models.Product, error) {
	if _, err := s.subcategoryRepo.GetByID(input.SubcategoryID); err != nil {
		return nil, err
	}
	if err := models.ValidateVariations(input.Variations); err != nil {
		return nil, err
	}

	if imageURLs == nil {
		imageURLs = []string{}
	}
	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		SubcategoryID: input.SubcategoryID,
		Images:        imageURLs,
		Variations:    input.Variations,
		Brand:         input.Brand,
		IsActive:      true,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// UpdateProduct applies a partial update to an existing product. Supplied
// fields replace the stored ones, absent fields are retained; a supplied
// subcategory is re-checked for existence and a supplied variation set is
// re-validated before anything is written. imageURLs replaces the image
// list only when non-nil.
func (s *ProductService) UpdateProduct(id string, input UpdateProductInput, imageURLs []string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.SubcategoryID != nil {
		if _, err := s.subcategoryRepo.GetByID(*input.SubcategoryID); err != nil {
			return nil, err
		}
	}
	if input.Variations != nil {
		if err := models.ValidateVariations(*input.Variations); err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.SubcategoryID != nil {
		product.SubcategoryID = *input.SubcategoryID
		product.Subcategory = nil
	}
	if input.Variations != nil {
		product.Variations = *input.Variations
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if imageURLs != nil {
		product.Images = imageURLs
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	s.publishEvent("product.updated", product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}

	s.publishEvent("product.deleted", &models.Product{ID: id})
	return nil
}

// publishEvent emits a catalog event to RabbitMQ. Publish failures are
// logged, never surfaced: the write already committed.
func (s *ProductService) publishEvent(routingKey string, product *models.Product) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"productID":   product.ID,
		"name":        product.Name,
		"subcategory": product.SubcategoryID,
		"isActive":    product.IsActive,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event for product %s: %v", routingKey, product.ID, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", routingKey, product.ID, err)
	}
}
